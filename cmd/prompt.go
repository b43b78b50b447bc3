package cmd

import (
	"github.com/spf13/cobra"
	"github.com/twshades/twshades/prompt"
)

func init() {
	rootCmd.AddCommand(promptCmd)
	addExportFlags(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt [color]",
	Short: "Answer a few questions to generate a palette",
	Long: `Ask for the color, output format, token name and whether to generate the
full scale, then write the palette. Flags and configuration provide the defaults.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var input string
		if len(args) == 1 {
			input = args[0]
		}

		options, err := prompt.Run(exportOptions(cmd, input))
		handleErr(err)
		handleErr(runExport(cmd, *options))
	},
}
