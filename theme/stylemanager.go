package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// StyleManager tracks the dark/light appearance of the surrounding terminal
// and fans a flip out to at most one listener.
type StyleManager struct {
	mu       sync.Mutex
	dark     bool
	probed   bool
	listener func()
}

var manager = &StyleManager{}

// Manager returns the process-wide style manager.
func Manager() *StyleManager {
	return manager
}

// Dark reports the current appearance. The terminal background is probed
// once, lazily; later flips arrive through SetDark.
func (m *StyleManager) Dark() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.probed {
		m.dark = lipgloss.HasDarkBackground()
		m.probed = true
	}
	return m.dark
}

// SetDark records an appearance flip and notifies the listener when the
// value actually changed.
func (m *StyleManager) SetDark(dark bool) {
	m.mu.Lock()
	m.probed = true
	changed := m.dark != dark
	m.dark = dark
	listener := m.listener
	m.mu.Unlock()

	if changed && listener != nil {
		listener()
	}
}

// Notify registers the single appearance listener, replacing any previous
// one.
func (m *StyleManager) Notify(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = fn
}

// ClearNotify removes the appearance listener.
func (m *StyleManager) ClearNotify() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = nil
}
