package theme

import (
	"strings"

	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/micropad-cli/micropad/key"
	"github.com/micropad-cli/micropad/log"
)

// Source is one palette origin, named for inspection output.
type Source struct {
	Name    string
	Palette Palette
}

// Sources probes every palette origin in precedence order: the active omarchy
// theme, the main alacritty config, explicit overrides from the environment
// or the micropad config file, and finally the (empty) toolkit defaults.
func Sources() []Source {
	return []Source{
		{Name: "omarchy", Palette: fromOmarchy()},
		{Name: "alacritty", Palette: fromAlacritty()},
		{Name: "environment", Palette: fromEnvironment()},
		{Name: "toolkit", Palette: Palette{}},
	}
}

// Resolve merges all sources field-by-field, earlier sources winning.
func Resolve() Palette {
	sources := Sources()
	palettes := make([]Palette, 0, len(sources))
	for _, s := range sources {
		palettes = append(palettes, s.Palette)
	}
	return Merge(palettes...)
}

// SystemMode reports whether theming is disabled in favor of the ambient
// terminal appearance.
func SystemMode() bool {
	return strings.EqualFold(viper.GetString(key.ThemeMode), "system")
}

func fromOmarchy() Palette {
	dir, ok := OmarchyThemeDir().Get()
	if !ok {
		log.Debug("omarchy current theme not detected")
		return Palette{}
	}

	pal := PaletteFromThemeDir(dir)
	if pal.IsEmpty() {
		log.Debugf("omarchy theme %s has no terminal palette files", dir)
		return Palette{}
	}

	log.Debugf("omarchy palette from %s", dir)
	return pal
}

func fromAlacritty() Palette {
	path, pal, ok := LocateAlacritty()
	if !ok {
		log.Debug("alacritty palette not found")
		return Palette{}
	}

	log.Debugf("alacritty palette from %s", path)
	return pal
}

// fromEnvironment reads the explicit per-field overrides. The keys are bound
// to MICROPAD_* variables and may also be set in the config file; values
// that are not a recognized color form pass through verbatim so stylesheet
// expressions like alpha(@term_fg,0.2) keep working.
func fromEnvironment() Palette {
	pal := Palette{
		Background:          overrideValue(key.ThemeBackground),
		Foreground:          overrideValue(key.ThemeForeground),
		SelectionBackground: overrideValue(key.ThemeSelectionBackground),
		SelectionForeground: overrideValue(key.ThemeSelectionForeground),
		Caret:               overrideValue(key.ThemeCaret),
	}
	if !pal.IsEmpty() {
		log.Debug("using explicit palette overrides")
	}
	return pal
}

func overrideValue(k string) mo.Option[string] {
	v := viper.GetString(k)
	if v == "" {
		return mo.None[string]()
	}
	return mo.Some(normalizeOr(v))
}
