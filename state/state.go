// Package state persists the editor session between runs: the last opened
// file and the window geometry. Loading is total; a missing or corrupt
// state file yields the default session.
package state

import (
	"encoding/json"

	"github.com/samber/mo"

	"github.com/micropad-cli/micropad/filesystem"
	"github.com/micropad-cli/micropad/log"
	"github.com/micropad-cli/micropad/where"
)

// Geometry is the last known window shape.
type Geometry struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Maximized bool `json:"maximized"`
}

// State is one persisted session.
type State struct {
	Path     mo.Option[string] `json:"path"`
	Geometry Geometry          `json:"geometry"`
}

// Default returns the session used when nothing was persisted yet.
func Default() State {
	return State{Geometry: Geometry{Width: 800, Height: 600}}
}

// Load reads the persisted session. Any failure degrades to Default.
func Load() State {
	data, err := filesystem.API().ReadFile(where.State())
	if err != nil {
		return Default()
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warnf("state file unreadable, starting fresh: %v", err)
		return Default()
	}
	return s
}

// Save persists the session, creating the config directory when needed.
func (s State) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return filesystem.API().WriteFile(where.State(), data, 0o644)
}
