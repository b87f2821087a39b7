package display

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"

	"github.com/micropad-cli/micropad/color"
	"github.com/micropad-cli/micropad/constant"
	"github.com/micropad-cli/micropad/util"
)

// Provider holds one stylesheet together with its interpreted named colors.
// Interpretation is best effort: declarations that cannot be resolved are
// dropped rather than reported, so a provider can always be installed.
type Provider struct {
	css    string
	colors map[string]string
}

var (
	defineRe = regexp.MustCompile(`(?m)^@define-color\s+(?P<name>\S+)\s+(?P<value>.+?);\s*$`)
	alphaRe  = regexp.MustCompile(`^alpha\(\s*(?P<color>.+?)\s*,\s*(?P<t>[0-9.]+)\s*\)$`)
	mixRe    = regexp.MustCompile(`^mix\(\s*(?P<a>.+?)\s*,\s*(?P<b>.+?)\s*,\s*(?P<t>[0-9.]+)\s*\)$`)
)

// maxRefDepth bounds @name indirection in declaration values.
const maxRefDepth = 4

// NewProvider interprets a stylesheet's @define-color declarations.
func NewProvider(css string) *Provider {
	raw := make(map[string]string)
	for _, m := range defineRe.FindAllStringSubmatch(css, -1) {
		raw[m[1]] = strings.TrimSpace(m[2])
	}

	p := &Provider{css: css, colors: make(map[string]string)}

	// The background resolves first so alpha() tints have a base to blend over.
	bg := p.resolveValue(raw["term_bg"], raw, constant.DefaultBackground, 0)
	if bg == "" {
		bg = constant.DefaultBackground
	}
	for name, value := range raw {
		if resolved := p.resolveValue(value, raw, bg, 0); resolved != "" {
			p.colors[name] = resolved
		}
	}
	return p
}

// resolveValue reduces a declaration value to a concrete hex color.
// Supported forms: literal colors, @name references, alpha(color, t) tints
// over the given background and mix(a, b, t) blends.
func (p *Provider) resolveValue(value string, raw map[string]string, bg string, depth int) string {
	value = strings.TrimSpace(value)
	if value == "" || depth > maxRefDepth {
		return ""
	}

	if name, ok := strings.CutPrefix(value, "@"); ok {
		return p.resolveValue(raw[name], raw, bg, depth+1)
	}

	if groups := util.ReGroups(alphaRe, value); len(groups) > 0 {
		tinted := p.resolveValue(groups["color"], raw, bg, depth+1)
		t, err := strconv.ParseFloat(groups["t"], 64)
		if tinted == "" || err != nil {
			return ""
		}
		return color.Mix(bg, tinted, t)
	}

	if groups := util.ReGroups(mixRe, value); len(groups) > 0 {
		a := p.resolveValue(groups["a"], raw, bg, depth+1)
		b := p.resolveValue(groups["b"], raw, bg, depth+1)
		t, err := strconv.ParseFloat(groups["t"], 64)
		if a == "" || b == "" || err != nil {
			return ""
		}
		return color.Mix(a, b, t)
	}

	return color.Normalize(value).OrElse("")
}

// CSS returns the provider's stylesheet text verbatim.
func (p *Provider) CSS() string {
	return p.css
}

// Color looks up an interpreted named color.
func (p *Provider) Color(name string) mo.Option[string] {
	if c, ok := p.colors[name]; ok {
		return mo.Some(c)
	}
	return mo.None[string]()
}
