// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

// EnvAlacrittyConfig overrides the location of the main alacritty config file.
const EnvAlacrittyConfig = "ALACRITTY_CONFIG"

// configHome resolves the user configuration root shared by every theme ecosystem.
// Theme-source paths are discovery targets and are never created by this application.
func configHome() string {
	if custom, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && custom != "" {
		return custom
	}
	return filepath.Join(lo.Must(os.UserHomeDir()), ".config")
}

// OmarchyRoot resolves the theme manager's configuration root.
func OmarchyRoot() string {
	return filepath.Join(configHome(), "omarchy")
}

// OmarchyThemes resolves the directory holding all installed theme directories.
func OmarchyThemes() string {
	return filepath.Join(OmarchyRoot(), "themes")
}

// OmarchyCurrentTheme resolves the conventional "current theme" location,
// usually a symlink into the themes directory.
func OmarchyCurrentTheme() string {
	return filepath.Join(OmarchyRoot(), "current", "theme")
}

// OmarchyMarkers lists the marker files whose trimmed contents name the active theme directory.
func OmarchyMarkers() []string {
	return []string{
		filepath.Join(OmarchyRoot(), "current-theme"),
		filepath.Join(OmarchyRoot(), "theme"),
		filepath.Join(OmarchyRoot(), "selected-theme"),
	}
}

// HyprConfig resolves the window manager's main configuration file,
// scanned as a last resort for a theme include directive.
func HyprConfig() string {
	return filepath.Join(configHome(), "hypr", "hyprland.conf")
}

// AlacrittyDir resolves the terminal emulator's per-user configuration directory.
func AlacrittyDir() string {
	return filepath.Join(configHome(), "alacritty")
}

// AlacrittyCandidates lists the terminal emulator's standard config locations in probe order.
func AlacrittyCandidates() []string {
	return []string{
		filepath.Join(AlacrittyDir(), "alacritty.toml"),
		filepath.Join(AlacrittyDir(), "alacritty.yml"),
		filepath.Join(AlacrittyDir(), "alacritty.yaml"),
		filepath.Join(lo.Must(os.UserHomeDir()), ".alacritty.yml"),
	}
}
