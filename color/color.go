// Package color provides lipgloss color constructors and the palette color utilities.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
	HiWhite  = New("15")
	HiBlack  = New("16")
)

// HexPattern matches every color syntax accepted by the terminal config dialects:
// #rrggbb, #rrggbbaa, 0xrrggbb and rgb:rr/gg/bb.
const HexPattern = `(?:#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|0x[0-9a-fA-F]{6}|rgb:[0-9a-fA-F]{2}/[0-9a-fA-F]{2}/[0-9a-fA-F]{2})`

var (
	hexRe    = regexp.MustCompile(`^#[0-9a-fA-F]{6}(?:[0-9a-fA-F]{2})?$`)
	hex0xRe  = regexp.MustCompile(`^0x[0-9a-fA-F]{6}$`)
	hexRgbRe = regexp.MustCompile(`^rgb:([0-9a-fA-F]{2})/([0-9a-fA-F]{2})/([0-9a-fA-F]{2})$`)
)

// Fallback interpolation endpoints used when a malformed color reaches Mix.
const (
	fallbackDark  = "#1e1e1e"
	fallbackLight = "#e0e0e0"
)

// Normalize canonicalizes a textual color into the #rrggbb form.
// Accepted inputs are #rrggbb, #rrggbbaa (alpha dropped), 0xrrggbb and rgb:rr/gg/bb.
// Anything else, including 3-digit CSS shorthand, yields None.
func Normalize(s string) mo.Option[string] {
	s = strings.TrimSpace(s)
	if s == "" {
		return mo.None[string]()
	}

	switch {
	case hexRe.MatchString(s):
		return mo.Some(strings.ToLower(s[:7]))
	case hex0xRe.MatchString(s):
		return mo.Some("#" + strings.ToLower(s[2:]))
	case hexRgbRe.MatchString(s):
		parts := hexRgbRe.FindStringSubmatch(s)
		return mo.Some(strings.ToLower("#" + parts[1] + parts[2] + parts[3]))
	default:
		return mo.None[string]()
	}
}

// rgb splits a hex color into its 8-bit channels, expanding 3-digit shorthand.
func rgb(h string) (r, g, b int, err error) {
	h = strings.TrimPrefix(strings.TrimSpace(h), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", h)
	}
	for i, v := range []*int{&r, &g, &b} {
		parsed, perr := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if perr != nil {
			return 0, 0, 0, perr
		}
		*v = int(parsed)
	}
	return r, g, b, nil
}

// Mix linearly interpolates two hex colors channel by channel.
// Malformed endpoints fall back to the built-in dark/light pair so a derived
// color is always producible.
func Mix(hexA, hexB string, t float64) string {
	ar, ag, ab, errA := rgb(hexA)
	br, bg, bb, errB := rgb(hexB)
	if errA != nil || errB != nil {
		ar, ag, ab, _ = rgb(fallbackDark)
		br, bg, bb, _ = rgb(fallbackLight)
	}

	channel := func(a, b int) int {
		v := int(float64(a)*(1-t) + float64(b)*t + 0.5)
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}

	return fmt.Sprintf("#%02x%02x%02x", channel(ar, br), channel(ag, bg), channel(ab, bb))
}
