package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/micropad-cli/micropad/color"
)

// Styles bundles the lipgloss styles the editor surface renders with.
// An ambient bundle carries empty styles so the terminal's own colors
// shine through.
type Styles struct {
	// Themed reports whether a stylesheet produced this bundle.
	Themed bool

	Window     lipgloss.Style
	Editor     lipgloss.Style
	Selection  lipgloss.Style
	Header     lipgloss.Style
	Entry      lipgloss.Style
	EntryFocus lipgloss.Style

	Caret lipgloss.Color
}

// Ambient returns the unstyled bundle used when no provider is installed.
func Ambient() Styles {
	return Styles{}
}

// Styles maps the provider's named colors onto the editor's widget styles.
// Missing names leave the corresponding style untouched.
func (p *Provider) Styles() Styles {
	s := Styles{Themed: true}

	paint := func(target *lipgloss.Style, bgName, fgName string) {
		style := lipgloss.NewStyle()
		if bg, ok := p.Color(bgName).Get(); ok {
			style = style.Background(color.New(bg))
		}
		if fg, ok := p.Color(fgName).Get(); ok {
			style = style.Foreground(color.New(fg))
		}
		*target = style
	}

	paint(&s.Window, "term_bg", "term_fg")
	paint(&s.Editor, "term_bg", "term_fg")
	paint(&s.Selection, "term_sel_bg", "term_sel_fg")
	paint(&s.Header, "term_bg", "term_fg")
	paint(&s.Entry, "term_entry_bg", "term_fg")
	paint(&s.EntryFocus, "term_entry_bg", "term_caret")

	s.Header = s.Header.Bold(true)
	s.Caret = color.New(p.Color("term_caret").OrElse(""))

	return s
}
