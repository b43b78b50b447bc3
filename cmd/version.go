package cmd

import (
	"context"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/constant"
	"github.com/twshades/twshades/style"
	"github.com/twshades/twshades/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint": style.Faint,
	"bold":  style.Bold,
	"blue":  style.Fg(color.HiBlue),
}).Parse(`{{ blue "▇▇▇" }} {{ blue .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Git Commit" }}  {{ bold .Revision }}
  {{ faint "Build Date" }}  {{ bold .BuiltAt }}
  {{ faint "Built By" }}    {{ bold .BuiltBy }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify(context.Background(), cmd.OutOrStdout())

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App, Version, Revision, BuiltAt, BuiltBy, OS, Arch string
		}{
			App:      constant.Twshades,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
		}))
	},
}
