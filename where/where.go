// Package where resolves the application's directories and files.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/twshades/twshades/constant"
	"github.com/twshades/twshades/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "TWSHADES_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honouring EnvConfigPath and
// falling back to the user config dir (XDG_CONFIG_HOME on Linux).
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Twshades))
}

// Cache returns the cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Twshades))
}

// Logs returns the directory log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Exporters returns the directory holding custom Lua exporters.
func Exporters() string {
	return ensureDir(filepath.Join(Config(), "exporters"))
}

// History returns the recently used colors file.
func History() string {
	return filepath.Join(Cache(), "history.json")
}
