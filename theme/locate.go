package theme

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/mo"
	"github.com/spf13/afero"

	"github.com/micropad-cli/micropad/filesystem"
	"github.com/micropad-cli/micropad/util"
	"github.com/micropad-cli/micropad/where"
)

// hyprThemeRe matches a window-manager include directive pointing into a
// theme directory, capturing the theme name.
var hyprThemeRe = regexp.MustCompile(
	`(?mi)^\s*(?:source|include)\s*=\s*(?P<path>.+omarchy/.+?/themes/(?P<name>[^/]+)/hyprland\.conf)\s*$`,
)

// readFile returns a file's text, or the empty string when it cannot be read.
func readFile(path string) string {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// exists reports whether a path is present, swallowing probe errors.
func exists(path string) bool {
	ok, err := filesystem.API().Exists(path)
	return err == nil && ok
}

// isDir reports whether a path is an existing directory.
func isDir(path string) bool {
	ok, err := filesystem.API().DirExists(path)
	return err == nil && ok
}

// OmarchyThemeDir locates the active theme-manager theme directory.
// Detection methods, first hit wins:
//  1. the conventional current/theme location
//  2. a "current" entry in the themes directory, resolved if it is a symlink
//  3. marker files whose trimmed contents name a theme directory
//  4. a theme include directive in the window-manager config
func OmarchyThemeDir() mo.Option[string] {
	if exists(where.OmarchyCurrentTheme()) {
		return mo.Some(where.OmarchyCurrentTheme())
	}

	if dir, ok := resolveCurrentEntry().Get(); ok {
		return mo.Some(dir)
	}

	for _, marker := range where.OmarchyMarkers() {
		if !exists(marker) {
			continue
		}
		name := strings.TrimSpace(readFile(marker))
		if name == "" {
			continue
		}
		if dir := filepath.Join(where.OmarchyThemes(), name); isDir(dir) {
			return mo.Some(dir)
		}
	}

	if exists(where.HyprConfig()) {
		groups := util.ReGroups(hyprThemeRe, readFile(where.HyprConfig()))
		if name := groups["name"]; name != "" {
			if dir := filepath.Join(where.OmarchyThemes(), name); isDir(dir) {
				return mo.Some(dir)
			}
		}
	}

	return mo.None[string]()
}

// resolveCurrentEntry accepts themes/current only when it resolves to a directory.
func resolveCurrentEntry() mo.Option[string] {
	entry := filepath.Join(where.OmarchyThemes(), "current")
	if !exists(entry) {
		return mo.None[string]()
	}

	if reader, ok := filesystem.API().Fs.(afero.LinkReader); ok {
		if target, err := reader.ReadlinkIfPossible(entry); err == nil {
			if !filepath.IsAbs(target) {
				target = filepath.Join(where.OmarchyThemes(), target)
			}
			if isDir(target) {
				return mo.Some(target)
			}
			return mo.None[string]()
		}
	}

	if isDir(entry) {
		return mo.Some(entry)
	}
	return mo.None[string]()
}

// AlacrittyCandidates lists the terminal config probe order: the explicit
// environment override, theme-manager-scoped copies, then the standard
// per-user locations.
func AlacrittyCandidates() []string {
	var cands []string

	if envp := os.Getenv(where.EnvAlacrittyConfig); envp != "" {
		cands = append(cands, envp)
	}

	for _, name := range []string{"alacritty.toml", "alacritty.yml", "alacritty.yaml"} {
		cands = append(cands, filepath.Join(where.OmarchyCurrentTheme(), name))
	}

	return append(cands, where.AlacrittyCandidates()...)
}

// LocateAlacritty returns the first candidate that both exists and yields a
// non-empty palette, together with that palette. An existing but unparseable
// file is skipped, not treated as found.
func LocateAlacritty() (string, Palette, bool) {
	for _, cand := range AlacrittyCandidates() {
		if !exists(cand) {
			continue
		}
		if pal, ok := parseCandidate(cand).Get(); ok && !pal.IsEmpty() {
			return cand, pal, true
		}
	}
	return "", Palette{}, false
}
