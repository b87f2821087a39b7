// Package display models the process-wide render target: a single surface
// whose appearance is controlled by at most one installed stylesheet provider
// per priority layer, mirroring how a desktop toolkit layers CSS providers on
// a display.
package display

import (
	"sync"

	"github.com/samber/mo"
)

// Priority describes the layering of an installed provider.
type Priority int

const (
	// PriorityTheme is the ambient layer supplied by the toolkit itself.
	PriorityTheme Priority = iota

	// PriorityApplication overrides theme defaults but not user overrides.
	PriorityApplication

	// PriorityUser is the topmost layer, reserved for explicit user styling.
	PriorityUser
)

// Display is the render target. The zero value is usable; the process-wide
// instance is obtained via Default.
type Display struct {
	mu        sync.Mutex
	providers map[Priority]*Provider
}

var std = &Display{}

// Default returns the process-wide display instance.
func Default() *Display {
	return std
}

// AddProvider installs a stylesheet provider at the given priority, replacing
// any provider previously installed at that layer.
func (d *Display) AddProvider(p *Provider, priority Priority) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.providers == nil {
		d.providers = make(map[Priority]*Provider)
	}
	d.providers[priority] = p
}

// RemoveProvider uninstalls the given provider from whichever layer holds it.
// Removing a provider that is not installed is a no-op.
func (d *Display) RemoveProvider(p *Provider) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for priority, installed := range d.providers {
		if installed == p {
			delete(d.providers, priority)
		}
	}
}

// Provider returns the installed provider at the topmost occupied layer.
func (d *Display) Provider() mo.Option[*Provider] {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, priority := range []Priority{PriorityUser, PriorityApplication, PriorityTheme} {
		if p, ok := d.providers[priority]; ok {
			return mo.Some(p)
		}
	}
	return mo.None[*Provider]()
}

// Styles resolves the active style bundle for the display: the topmost
// provider's styles, or the ambient (unstyled) bundle when nothing is
// installed.
func (d *Display) Styles() Styles {
	if p, ok := d.Provider().Get(); ok {
		return p.Styles()
	}
	return Ambient()
}
