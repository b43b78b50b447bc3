package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/config"
	"github.com/twshades/twshades/constant"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/icon"
	"github.com/twshades/twshades/style"
	"github.com/twshades/twshades/where"
	"golang.org/x/exp/slices"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

// lookupField returns the registered field for key or fails with a suggestion.
func lookupField(key string) config.Field {
	field, ok := config.Default[key]
	if !ok {
		handleErr(errUnknownKey(key))
	}
	return field
}

// parseValue converts raw to the type of the field's default value.
func parseValue(field config.Field, raw string) (any, error) {
	switch field.Value.(type) {
	case bool:
		return strconv.ParseBool(raw)
	case int:
		return strconv.Atoi(raw)
	default:
		return raw, nil
	}
}

func sortedKeys() []string {
	keys := lo.Keys(config.Default)
	slices.Sort(keys)
	return keys
}

func configFile() string {
	return filepath.Join(where.Config(), constant.Twshades+".toml")
}

func completionConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return sortedKeys(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(keys) == 0 {
			keys = sortedKeys()
		}

		fields := lo.Map(keys, func(key string, _ int) config.Field {
			return lookupField(key)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(fields))
			return
		}

		pretty := make([]string, len(fields))
		for i := range fields {
			pretty[i] = fields[i].Pretty()
		}
		cmd.Println(strings.Join(pretty, "\n\n"))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Set a configuration value",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := lookupField(args[0])

		value, err := parseValue(field, args[1])
		if err != nil {
			handleErr(fmt.Errorf("invalid value for %s: %w", field.Key, err))
		}

		viper.Set(field.Key, value)
		handleErr(config.Write())

		fmt.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(field.Key),
			style.Fg(color.Yellow)(fmt.Sprint(value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.SetOut(os.Stdout)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print a configuration value",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(viper.Get(lookupField(args[0]).Key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite the existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		fmt.Printf("%s wrote config to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		fmt.Printf("%s deleted config\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]...",
	Short:             "Reset configuration values to their defaults",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		keys := args
		if lo.Must(cmd.Flags().GetBool("all")) {
			keys = sortedKeys()
		} else if len(keys) == 0 {
			handleErr(fmt.Errorf("either a key or --all must be given"))
		}

		for _, key := range keys {
			field := lookupField(key)
			viper.Set(field.Key, field.Value)
		}
		handleErr(config.Write())

		fmt.Printf(
			"%s reset %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(strings.Join(keys, ", ")),
		)
	},
}
