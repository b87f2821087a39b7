package theme

import (
	"fmt"
	"strings"

	"github.com/micropad-cli/micropad/constant"
)

const (
	entryMixDark  = 0.06
	entryMixLight = 0.12
)

// Stylesheet renders a palette into the application stylesheet. Missing
// fields fall back to expressions over the defined colors, so a partial
// palette still yields a coherent scheme. The entry mix is stronger in light
// mode so input fields stay visible.
func Stylesheet(pal Palette, dark bool) string {
	bg := pal.Background.OrElse(constant.DefaultBackground)
	fg := pal.Foreground.OrElse(constant.DefaultForeground)
	selBG := pal.SelectionBackground.OrElse("alpha(@term_fg,0.15)")
	selFG := pal.SelectionForeground.OrElse("@term_fg")
	caret := pal.Caret.OrElse("@term_fg")

	entryMix := entryMixDark
	if !dark {
		entryMix = entryMixLight
	}

	lines := []string{
		"/* generated from palette */",
		fmt.Sprintf("@define-color term_bg %s;", bg),
		fmt.Sprintf("@define-color term_fg %s;", fg),
		fmt.Sprintf("@define-color term_sel_bg %s;", selBG),
		fmt.Sprintf("@define-color term_sel_fg %s;", selFG),
		fmt.Sprintf("@define-color term_caret %s;", caret),
		fmt.Sprintf("@define-color term_entry_bg mix(@term_bg, @term_fg, %.2f);", entryMix),
		"",
		"window, .background, .view {",
		"  background-color: @term_bg;",
		"  color: @term_fg;",
		"}",
		"textview, textview > text {",
		"  background-color: @term_bg;",
		"  color: @term_fg;",
		"  caret-color: @term_caret;",
		"}",
		"textview text selection {",
		"  background-color: @term_sel_bg;",
		"  color: @term_sel_fg;",
		"}",
		"headerbar, .titlebar {",
		"  background-color: @term_bg;",
		"  color: @term_fg;",
		"  border-bottom: 1px solid alpha(@term_fg, 0.08);",
		"}",
		"entry, searchentry {",
		"  background-color: @term_entry_bg;",
		"  color: @term_fg;",
		"  border: 1px solid alpha(@term_fg, 0.15);",
		"}",
		"entry:focus, searchentry:focus {",
		"  border-color: alpha(@term_fg, 0.28);",
		"}",
		"entry selection, searchentry selection {",
		"  background-color: @term_sel_bg;",
		"  color: @term_sel_fg;",
		"}",
	}
	return strings.Join(lines, "\n")
}
