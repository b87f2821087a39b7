package theme

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/micropad-cli/micropad/color"
	"github.com/micropad-cli/micropad/constant"
	"github.com/micropad-cli/micropad/filesystem"
	"github.com/micropad-cli/micropad/log"
	"github.com/micropad-cli/micropad/util"
)

// structuredExts are the extensions handled by the generic deserializer.
var structuredExts = []string{".toml", ".yaml", ".yml"}

// ParseAlacritty extracts a palette from a structured alacritty config file.
// A successful structured parse always yields a fully populated palette:
// background/foreground default to the built-in pair, missing selection
// colors are synthesized from them and the caret falls back through
// bright white, normal white, then foreground.
// Returns None when the file cannot be deserialized.
func ParseAlacritty(path string) mo.Option[Palette] {
	if !lo.Contains(structuredExts, strings.ToLower(filepath.Ext(path))) {
		return mo.None[Palette]()
	}

	v := viper.New()
	v.SetFs(filesystem.API())
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		log.Debugf("structured parse failed for %s: %v", path, err)
		return mo.None[Palette]()
	}

	first := func(keys ...string) string {
		for _, k := range keys {
			if s := v.GetString(k); s != "" {
				return s
			}
		}
		return ""
	}

	bg := v.GetString("colors.primary.background")
	fg := v.GetString("colors.primary.foreground")

	selBG := v.GetString("colors.selection.background")
	selFG := first("colors.selection.text", "colors.selection.foreground")

	if selBG == "" {
		selBG = color.Mix(
			lo.CoalesceOrEmpty(bg, constant.DefaultBackground),
			lo.CoalesceOrEmpty(fg, constant.DefaultForeground),
			0.15,
		)
	}
	if selFG == "" {
		selFG = lo.CoalesceOrEmpty(fg, constant.DefaultForeground)
	}

	caret := first("colors.bright.white", "colors.normal.white")
	if caret == "" {
		caret = lo.CoalesceOrEmpty(fg, constant.DefaultForeground)
	}

	return mo.Some(Palette{
		Background:          mo.Some(color.Normalize(bg).OrElse(constant.DefaultBackground)),
		Foreground:          mo.Some(color.Normalize(fg).OrElse(constant.DefaultForeground)),
		SelectionBackground: mo.Some(normalizeOr(selBG)),
		SelectionForeground: mo.Some(normalizeOr(selFG)),
		Caret:               mo.Some(normalizeOr(caret)),
	})
}

// normalizeOr canonicalizes a recognized color form and passes anything else
// through verbatim, so synthesized stylesheet expressions survive.
func normalizeOr(s string) string {
	return color.Normalize(s).OrElse(s)
}

// blockKey scans heterogeneous TOML/YAML-ish text for a key inside a named
// block, accepting both colon and equals separators.
func blockKey(txt, block, key string) mo.Option[string] {
	pat := fmt.Sprintf(
		`(?mis)^\s*(?:colors\.\s*)?%s\s*[:=].*?^\s*%s\s*[:=]\s*(?P<x>%s)`,
		block, key, color.HexPattern,
	)
	groups := util.ReGroups(regexp.MustCompile(pat), txt)
	if x, ok := groups["x"]; ok {
		return color.Normalize(x)
	}
	return mo.None[string]()
}

// ExtractAlacrittyText is the best-effort regex tier below the structured
// parser, used for files or import aggregates the deserializer rejects.
// Extraction returns the first match in scan order.
func ExtractAlacrittyText(txt string) Palette {
	return Palette{
		Background:          blockKey(txt, "primary", "background"),
		Foreground:          blockKey(txt, "primary", "foreground"),
		SelectionBackground: blockKey(txt, "selection", "background"),
		SelectionForeground: firstSome(blockKey(txt, "selection", "text"), blockKey(txt, "selection", "foreground")),
		Caret:               firstSome(blockKey(txt, "cursor", "cursor"), blockKey(txt, "cursor", "text")),
	}
}

// parseCandidate applies the structured parser when the extension allows it,
// then falls back to import aggregation plus regex extraction.
func parseCandidate(path string) mo.Option[Palette] {
	if pal, ok := ParseAlacritty(path).Get(); ok && !pal.IsEmpty() {
		return mo.Some(pal)
	}

	if agg := CollectImports(path); agg != "" {
		if pal := ExtractAlacrittyText(agg); !pal.IsEmpty() {
			return mo.Some(pal)
		}
	}

	return mo.None[Palette]()
}

// PaletteFromThemeDir extracts a palette from the terminal config files
// inside a theme directory, preferring the structured alacritty formats,
// then kitty, then foot.
func PaletteFromThemeDir(dir string) Palette {
	for _, name := range []string{"alacritty.toml", "alacritty.yaml", "alacritty.yml"} {
		f := filepath.Join(dir, name)
		if !exists(f) {
			continue
		}
		if pal, ok := ParseAlacritty(f).Get(); ok {
			return pal
		}
		return ExtractAlacrittyText(readFile(f))
	}

	if f := filepath.Join(dir, "kitty.conf"); exists(f) {
		return ExtractKitty(readFile(f))
	}

	if f := filepath.Join(dir, "foot.ini"); exists(f) {
		return ExtractFoot(readFile(f))
	}

	return Palette{}
}
