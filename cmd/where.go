package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/style"
	"github.com/twshades/twshades/where"
)

type wherePath struct {
	flag  string
	short string
	path  func() string
}

// Cache and history are reachable by flag but left out of the listing.
var wherePaths = []wherePath{
	{"config", "c", where.Config},
	{"exporters", "e", where.Exporters},
	{"logs", "l", where.Logs},
	{"cache", "", where.Cache},
	{"history", "", where.History},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, p := range wherePaths {
		whereCmd.Flags().BoolP(p.flag, p.short, false, "print the "+p.flag+" path")
		if p.short == "" {
			lo.Must0(whereCmd.Flags().MarkHidden(p.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(p wherePath, _ int) string {
		return p.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths twshades uses",
	Example: "  twshades where\n" +
		"  $EDITOR \"$(twshades where --exporters)\"",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(p.flag)) {
				cmd.Println(p.path())
				return
			}
		}

		listed := lo.Filter(wherePaths, func(p wherePath, _ int) bool { return p.short != "" })
		width := lo.Max(lo.Map(listed, func(p wherePath, _ int) int { return len(p.flag) }))

		for _, p := range listed {
			path := p.path()
			mark := style.Fg(color.Green)("●")
			if exists, _ := filesystem.API().Exists(path); !exists {
				mark = style.Faint("○")
			}

			label := fmt.Sprintf("%-*s", width, p.flag)
			cmd.Printf("%s %s  %s\n", mark, style.Fg(color.HiPurple)(label), path)
		}
	},
}
