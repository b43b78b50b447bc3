// Package config manages application settings, their defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/twshades/twshades/constant"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/where"
)

// EnvKeyReplacer normalizes configuration keys into environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads the config
// file if one exists.
func Setup() error {
	viper.SetConfigName(constant.Twshades)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Twshades)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}

// Write persists the in-memory configuration, creating the file when missing.
func Write() error {
	var notFound viper.ConfigFileNotFoundError
	if err := viper.WriteConfig(); err != nil {
		if errors.As(err, &notFound) {
			return viper.SafeWriteConfig()
		}
		return err
	}
	return nil
}
