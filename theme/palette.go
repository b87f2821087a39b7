// Package theme implements the palette resolution engine: it discovers the
// active terminal-emulator color scheme from several configuration
// ecosystems, merges the partial palettes they yield, synthesizes a
// stylesheet and keeps the installed style in sync with external changes.
package theme

import (
	"github.com/samber/mo"
)

// Palette holds the five color roles an editor surface needs.
// Any field may be unset; a field that is set holds a normalized or
// directly usable color string.
type Palette struct {
	Background          mo.Option[string]
	Foreground          mo.Option[string]
	SelectionBackground mo.Option[string]
	SelectionForeground mo.Option[string]
	Caret               mo.Option[string]
}

// IsEmpty reports whether no field is set.
func (p Palette) IsEmpty() bool {
	return p.Background.IsAbsent() &&
		p.Foreground.IsAbsent() &&
		p.SelectionBackground.IsAbsent() &&
		p.SelectionForeground.IsAbsent() &&
		p.Caret.IsAbsent()
}

// Merge combines palettes field by field, earlier arguments taking
// precedence: the first set value for each field wins.
func Merge(palettes ...Palette) Palette {
	var out Palette
	for _, p := range palettes {
		fill(&out.Background, p.Background)
		fill(&out.Foreground, p.Foreground)
		fill(&out.SelectionBackground, p.SelectionBackground)
		fill(&out.SelectionForeground, p.SelectionForeground)
		fill(&out.Caret, p.Caret)
	}
	return out
}

func fill(dst *mo.Option[string], src mo.Option[string]) {
	if dst.IsAbsent() && src.IsPresent() {
		*dst = src
	}
}

// firstSome returns the first set option among the arguments.
func firstSome(opts ...mo.Option[string]) mo.Option[string] {
	for _, o := range opts {
		if o.IsPresent() {
			return o
		}
	}
	return mo.None[string]()
}

// someIf wraps a string in Some unless it is empty.
func someIf(s string) mo.Option[string] {
	if s == "" {
		return mo.None[string]()
	}
	return mo.Some(s)
}
