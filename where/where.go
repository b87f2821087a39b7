// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/micropad-cli/micropad/constant"
	"github.com/micropad-cli/micropad/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "MICROPAD_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths on Darwin and Windows.
// Direct override: The path resolution can be explicitly specified via the MICROPAD_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Micropad))
}

// Cache resolves the absolute path to the application cache directory.
func Cache() string {
	base := lo.Must(os.UserCacheDir())
	return ensureDir(filepath.Join(base, constant.Micropad))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// State resolves the absolute path to the persisted session state file.
func State() string {
	return filepath.Join(Config(), "state.json")
}

// UserStylesheet resolves the absolute path to the user's fallback stylesheet.
// It is applied only when palette resolution produces nothing usable.
func UserStylesheet() string {
	return filepath.Join(Config(), "style.css")
}
