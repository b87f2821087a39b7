// Package editor provides the text editing terminal user interface.
package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/micropad-cli/micropad/key"
	session "github.com/micropad-cli/micropad/state"
)

// Options encapsulates the runtime configuration for the editor.
type Options struct {
	// Path is the file to open at startup.
	Path mo.Option[string]

	// OnProgram receives the running program so external event sources can
	// send messages into the loop.
	OnProgram func(*tea.Program)
}

// ThemeChangedMsg signals that the installed stylesheet changed and the
// style bundle must be re-pulled from the display.
type ThemeChangedMsg struct{}

// Run initializes and executes the editor's Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)

	if path, ok := options.Path.Get(); ok {
		if err := bubble.openPath(path); err != nil {
			return err
		}
	} else if viper.GetBool(key.EditorSaveState) {
		// Best effort: a stale session path is not an error.
		if path, ok := session.Load().Path.Get(); ok {
			_ = bubble.openPath(path)
		}
	}

	program := tea.NewProgram(bubble, tea.WithAltScreen())
	if options.OnProgram != nil {
		options.OnProgram(program)
	}

	_, err := program.Run()
	return err
}
