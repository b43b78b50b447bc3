package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/twshades/twshades/icon"
	"github.com/twshades/twshades/util"
	"github.com/twshades/twshades/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"history file", "history", mo.Some("s"), where.History},
	{"logs", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and generated files",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.location())
			erase()
			if !os.IsNotExist(err) {
				handleErr(err)
			}

			cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
