package theme

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/micropad-cli/micropad/filesystem"
)

// maxImportDepth bounds pathological import chains.
const maxImportDepth = 8

var (
	importLineRe = regexp.MustCompile(`(?mi)^[ \t]*(?:imports?|import)[ \t]*:[ \t]*(?P<val>.*)$`)
	quotedPathRe = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)
	dashedItemRe = regexp.MustCompile(`^\s*-\s*(?:"([^"]+)"|'([^']+)')\s*$`)
)

// sectionPrefixes terminate an indented dash-list import scan.
var sectionPrefixes = []string{
	"#", "colors:", "primary:", "cursor:", "selection:", "schemes:", "themes:",
}

// CollectImports aggregates a config file's text with everything reachable
// through its import directives: quoted inline lists and indented dash-list
// entries, glob-expanded, relative paths resolved against the referencing
// file's directory. Imported text is concatenated before the referencing
// file's own text, so with first-match extraction an imported value shadows
// the root file's. Cycles and diamonds are cut by a visited set; depth is
// capped.
func CollectImports(root string) string {
	return collectImports(root, make(map[string]struct{}), 0)
}

func collectImports(path string, visited map[string]struct{}, depth int) string {
	if depth > maxImportDepth {
		return ""
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if _, seen := visited[path]; seen || !exists(path) {
		return ""
	}
	visited[path] = struct{}{}

	txt := readFile(path)
	if txt == "" {
		return ""
	}
	baseDir := filepath.Dir(path)

	var combined []string

	for _, loc := range importLineRe.FindAllStringSubmatchIndex(txt, -1) {
		val := strings.TrimSpace(txt[loc[2]:loc[3]])

		var paths []string
		for _, qm := range quotedPathRe.FindAllStringSubmatch(val, -1) {
			if p := firstGroup(qm); p != "" {
				paths = append(paths, p)
			}
		}

		if len(paths) == 0 && (val == "" || strings.HasSuffix(val, ":") || val == "|" || val == ">") {
			paths = dashListPaths(txt[loc[1]:])
		}

		for _, raw := range paths {
			for _, match := range expandEntry(raw, baseDir) {
				if part := collectImports(match, visited, depth+1); part != "" {
					combined = append(combined, part)
				}
			}
		}
	}

	combined = append(combined, txt)
	return strings.Join(combined, "\n")
}

// dashListPaths scans indented dash-list entries until a recognized section
// header or a non-entry line is seen.
func dashListPaths(after string) []string {
	var paths []string

	for _, line := range strings.Split(after, "\n") {
		trimmed := strings.TrimSpace(line)

		if hasAnyPrefix(trimmed, sectionPrefixes) {
			break
		}

		if dm := dashedItemRe.FindStringSubmatch(line); dm != nil {
			if p := firstGroup(dm); p != "" {
				paths = append(paths, p)
			}
			continue
		}

		if trimmed != "" && !strings.HasPrefix(trimmed, "-") {
			break
		}
	}

	return paths
}

// expandEntry applies home expansion, base-dir resolution and glob matching
// to one referenced import entry.
func expandEntry(raw, baseDir string) []string {
	if home, err := os.UserHomeDir(); err == nil {
		if rest, ok := strings.CutPrefix(raw, "~/"); ok {
			raw = filepath.Join(home, rest)
		}
	}
	if !filepath.IsAbs(raw) {
		raw = filepath.Join(baseDir, raw)
	}

	matches, err := afero.Glob(filesystem.API().Fs, raw)
	if err != nil {
		return nil
	}
	return matches
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// firstGroup returns the first non-empty capture of an alternation match.
func firstGroup(match []string) string {
	for _, g := range match[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}
