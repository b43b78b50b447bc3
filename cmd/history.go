package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/history"
	"github.com/twshades/twshades/icon"
	"github.com/twshades/twshades/shade"
	"github.com/twshades/twshades/style"
	"github.com/twshades/twshades/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "l", 10, "Show at most this many colors, 0 for all")
	historyCmd.Flags().BoolP("raw", "r", false, "Print inputs only")
	historyCmd.Flags().Bool("clear", false, "Forget every remembered color")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently generated colors",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			cmd.Printf("%s history cleared\n", icon.Get(icon.Success))
			return
		}

		entries, err := history.Recent(lo.Must(cmd.Flags().GetInt("limit")))
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetBool("raw"))
		if !raw {
			cmd.Printf("%s %s\n", icon.Get(icon.History), style.Faint(util.Quantify(len(entries), "color", "colors")))
		}

		for _, e := range entries {
			if raw {
				cmd.Println(e.Input)
				continue
			}

			swatch := style.Faint("   ")
			if result, err := shade.Make(e.Input, shade.Options{MakeShades: true}); err == nil {
				base, _ := result.MustLeft().Get(shade.Base)
				swatch = style.Swatch(base, "", 3)
			}

			cmd.Printf(
				"%s %s %s\n",
				swatch,
				style.Fg(color.Yellow)(e.Input),
				style.Faint(util.Quantify(e.Uses, "use", "uses")+", "+e.LastUsed.Format("2006-01-02 15:04")),
			)
		}
	},
}
