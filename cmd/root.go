// Package cmd implements the twshades command-line interface.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/constant"
	"github.com/twshades/twshades/export"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/history"
	"github.com/twshades/twshades/icon"
	"github.com/twshades/twshades/key"
	"github.com/twshades/twshades/log"
	"github.com/twshades/twshades/shade"
	"github.com/twshades/twshades/style"
	"github.com/twshades/twshades/tui"
	"github.com/twshades/twshades/util"
	"github.com/twshades/twshades/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember generated colors")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	addExportFlags(rootCmd)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(context.Background(), cmd.OutOrStdout())
	})
}

// addExportFlags registers the flags shared by every command that writes a palette.
func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Output format")
	lo.Must0(cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return export.Names(), cobra.ShellCompDirectiveNoFileComp
	}))

	cmd.Flags().StringP("name", "n", "", "Token name")

	cmd.Flags().BoolP("single", "s", false, "Produce a single rgb() expression instead of the full scale")
	cmd.Flags().Bool("no-vars", false, "Reject --variable references instead of passing them through")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}

// exportOptions builds export options from configuration, overridden by the
// flags added by addExportFlags.
func exportOptions(cmd *cobra.Command, input string) export.Options {
	stringFlag := func(name, configKey string) string {
		if cmd.Flags().Changed(name) {
			return lo.Must(cmd.Flags().GetString(name))
		}
		return viper.GetString(configKey)
	}

	options := export.Options{
		Input:  input,
		Name:   stringFlag("name", key.OutputName),
		Format: stringFlag("format", key.OutputFormat),
		Shades: shade.Options{
			Variables:  viper.GetBool(key.ShadesVariables),
			MakeShades: viper.GetBool(key.ShadesMake),
		},
	}

	if lo.Must(cmd.Flags().GetBool("single")) {
		options.Shades.MakeShades = false
	}

	if lo.Must(cmd.Flags().GetBool("no-vars")) {
		options.Shades.Variables = false
	}

	return options
}

// runExport writes the palette to --output or stdout and remembers the input.
// The output file is only touched once the palette rendered successfully.
func runExport(cmd *cobra.Command, options export.Options) error {
	path := lo.Must(cmd.Flags().GetString("output"))

	var buf bytes.Buffer
	options.Out = &buf
	options.Plain = path != "" || !util.IsTerminal()
	if err := export.Run(&options); err != nil {
		return err
	}

	if path == "" {
		_, err := buf.WriteTo(cmd.OutOrStdout())
		if err != nil {
			return err
		}
	} else if err := writeOutput(path, &buf); err != nil {
		return err
	}

	if err := history.Remember(options.Input); err != nil {
		log.Warnf("remember %s: %v", options.Input, err)
	}

	return nil
}

func writeOutput(path string, r io.Reader) error {
	f, err := filesystem.Create(path)
	if err != nil {
		return err
	}
	defer util.Ignore(f.Close)

	_, err = io.Copy(f, r)
	return err
}

var rootCmd = &cobra.Command{
	Use:   constant.Twshades + " [color]",
	Short: "Tailwind-style shade generator",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiBlue).Render("    - Generate 50-950 design-token shades from a single color"),
	Example: `  twshades "#3498db"
  twshades "hsl(204, 70%, 53%)" -f css -n brand
  twshades "rgb(52, 152, 219)" --single
  twshades --brand -f tailwind`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return history.Suggest(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 1 {
			handleErr(runExport(cmd, exportOptions(cmd, args[0])))
			return
		}

		if !util.IsTerminal() {
			handleErr(errors.New("a color argument is required when stdout is not a terminal"))
		}

		options := exportOptions(cmd, "")
		selection, err := tui.Run(&tui.Options{Shades: options.Shades})
		handleErr(err)

		if selection == nil {
			return
		}

		options.Input = selection.Input
		options.Shades = selection.Shades
		handleErr(runExport(cmd, options))
	},
}

// Execute runs the root command.
func Execute() {
	rootCmd.SetArgs(moveVariableArg(os.Args[1:]))

	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// moveVariableArg moves the first "--name" variable reference behind a "--"
// terminator so that cobra parses it as the color argument instead of an
// unknown flag.
func moveVariableArg(args []string) []string {
	target, _, err := rootCmd.Find(args)
	if err != nil || (target != rootCmd && target != promptCmd) {
		return args
	}

	for i, arg := range args {
		if arg == "--" {
			return args
		}

		if !strings.HasPrefix(arg, shade.VariablePrefix) {
			continue
		}

		name, _, _ := strings.Cut(strings.TrimPrefix(arg, shade.VariablePrefix), "=")
		if name == "" || name == "help" || target.Flag(name) != nil {
			continue
		}

		moved := append(append([]string{}, args[:i]...), args[i+1:]...)
		return append(moved, "--", arg)
	}

	return args
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		printErr(os.Stderr, err)
		os.Exit(1)
	}
}

func printErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
}
