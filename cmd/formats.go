package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/constant"
	"github.com/twshades/twshades/export"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/icon"
	"github.com/twshades/twshades/open"
	"github.com/twshades/twshades/style"
	"github.com/twshades/twshades/util"
	"github.com/twshades/twshades/where"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Manage output formats",
}

func init() {
	formatsCmd.AddCommand(formatsListCmd)

	formatsListCmd.Flags().BoolP("raw", "r", false, "Print names only")
	formatsListCmd.Flags().BoolP("custom", "c", false, "List custom Lua exporters only")
	formatsListCmd.Flags().BoolP("builtin", "b", false, "List builtin formats only")

	formatsListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	formatsListCmd.SetOut(os.Stdout)
}

var formatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available output formats",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render

		list := func(header string, exporters []export.Exporter) {
			if !raw {
				cmd.Println(headerStyle(header))
			}

			for _, e := range exporters {
				if raw {
					cmd.Println(e.Name())
				} else {
					cmd.Printf("%s %s\n", style.Bold(e.Name()), style.Faint(e.Description()))
				}
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			list("Builtin:", export.Builtins())
		case lo.Must(cmd.Flags().GetBool("custom")):
			list("Custom:", export.Customs())
		default:
			list("Builtin:", export.Builtins())
			if !raw {
				cmd.Println()
			}
			list("Custom:", export.Customs())
		}
	},
}

// exporterFile maps a format name to its Lua file. Names are sanitized the
// same way for every subcommand and may not shadow a builtin.
func exporterFile(name string) (string, error) {
	stem := util.SanitizeFilename(name)
	if stem == "" {
		return "", fmt.Errorf("invalid exporter name %q", name)
	}

	if lo.ContainsBy(export.Builtins(), func(e export.Exporter) bool { return e.Name() == stem }) {
		return "", fmt.Errorf("%s is a builtin format", style.Fg(color.Yellow)(stem))
	}

	return filepath.Join(where.Exporters(), stem+".lua"), nil
}

func init() {
	formatsCmd.AddCommand(formatsNewCmd)
	formatsNewCmd.Flags().BoolP("edit", "e", false, "Open the new exporter with the default application")
	formatsNewCmd.SetOut(os.Stdout)
}

var formatsNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a custom Lua exporter",
	Long: `Create a Lua exporter in the exporters directory.
It becomes available as a format named after the file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target, err := exporterFile(args[0])
		handleErr(err)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name     string
			Author   string
			ExportFn string
		}{
			Name:     util.FileStem(target),
			Author:   author,
			ExportFn: constant.ExportFn,
		}

		tmpl, err := template.New("exporter").Funcs(template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}).Parse(constant.ExporterTemplate)
		handleErr(err)

		f, err := filesystem.API().Create(target)
		handleErr(err)
		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))
		cmd.Printf("%s %s\n", icon.Get(icon.Lua), target)

		if lo.Must(cmd.Flags().GetBool("edit")) {
			handleErr(open.Start(target))
		}
	},
}

func init() {
	formatsCmd.AddCommand(formatsRemoveCmd)
}

var formatsRemoveCmd = &cobra.Command{
	Use:   "remove <name>...",
	Short: "Remove custom Lua exporters",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(export.Customs(), func(e export.Exporter, _ int) string {
			return e.Name()
		}), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			target, err := exporterFile(name)
			handleErr(err)
			handleErr(filesystem.API().Remove(target))
			cmd.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}
