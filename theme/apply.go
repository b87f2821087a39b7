package theme

import (
	"sync"

	"github.com/micropad-cli/micropad/display"
	"github.com/micropad-cli/micropad/log"
	"github.com/micropad-cli/micropad/where"
)

// Applier owns the installed stylesheet provider. At most one provider is
// active; every application removes the previous one first, so repeated
// calls never stack providers.
type Applier struct {
	mu       sync.Mutex
	display  *display.Display
	provider *display.Provider
}

var applier = &Applier{display: display.Default()}

// DefaultApplier returns the process-wide applier.
func DefaultApplier() *Applier {
	return applier
}

// ApplyText installs a stylesheet from literal text.
func (a *Applier) ApplyText(css string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.remove()
	a.install(display.NewProvider(css))
}

// ApplyFile installs a stylesheet read from the filesystem. An unreadable
// file leaves styling cleared.
func (a *Applier) ApplyFile(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.remove()
	css := readFile(path)
	if css == "" {
		log.Warnf("stylesheet %s unreadable, inheriting ambient styling", path)
		return
	}
	a.install(display.NewProvider(css))
}

// Clear removes the installed provider so ambient styling shows through.
func (a *Applier) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.remove()
}

func (a *Applier) remove() {
	if a.provider != nil {
		a.display.RemoveProvider(a.provider)
		a.provider = nil
	}
}

func (a *Applier) install(p *display.Provider) {
	a.display.AddProvider(p, display.PriorityApplication)
	a.provider = p
}

// ApplyBest runs the whole pipeline: honor system mode, resolve the palette,
// synthesize the stylesheet and install it. The user stylesheet fallback is
// defensive; synthesis always yields usable text for any palette.
func ApplyBest() {
	if SystemMode() {
		log.Debug("theme mode system, clearing provider")
		applier.Clear()
		return
	}

	pal := Resolve()
	if css := Stylesheet(pal, Manager().Dark()); css != "" {
		applier.ApplyText(css)
		return
	}

	if user := where.UserStylesheet(); exists(user) {
		log.Debugf("falling back to user stylesheet %s", user)
		applier.ApplyFile(user)
		return
	}

	applier.Clear()
}
