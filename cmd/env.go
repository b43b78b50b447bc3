package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/config"
	"github.com/twshades/twshades/style"
	"github.com/twshades/twshades/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables twshades reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		envs := lo.Map(config.EnvExposed, func(k string, _ int) string {
			field := config.Default[k]
			return field.Env()
		})
		envs = append(envs, where.EnvConfigPath)
		slices.Sort(envs)

		for _, env := range envs {
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
