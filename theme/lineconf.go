package theme

import (
	"fmt"
	"regexp"

	"github.com/samber/mo"

	"github.com/micropad-cli/micropad/color"
)

// ExtractKitty pulls a partial palette out of kitty.conf text. Kitty uses
// whitespace-separated key/value lines.
func ExtractKitty(txt string) Palette {
	get := lineValue(txt, `(?mi)^\s*%s\s+(%s)`)
	return Palette{
		Background:          get("background"),
		Foreground:          get("foreground"),
		SelectionBackground: get("selection_background"),
		SelectionForeground: get("selection_foreground"),
		Caret:               get("cursor"),
	}
}

// ExtractFoot pulls a partial palette out of foot.ini text. Foot uses
// ini-style key=value lines.
func ExtractFoot(txt string) Palette {
	get := lineValue(txt, `(?mi)^\s*%s\s*=\s*(%s)`)
	return Palette{
		Background:          get("background"),
		Foreground:          get("foreground"),
		SelectionBackground: get("selection-background"),
		SelectionForeground: get("selection-foreground"),
		Caret:               get("cursor"),
	}
}

// lineValue builds a first-match extractor for one key/value line shape.
func lineValue(txt, shape string) func(key string) mo.Option[string] {
	return func(key string) mo.Option[string] {
		re := regexp.MustCompile(fmt.Sprintf(shape, regexp.QuoteMeta(key), color.HexPattern))
		if m := re.FindStringSubmatch(txt); m != nil {
			return color.Normalize(m[1])
		}
		return mo.None[string]()
	}
}
