// Package editor provides the text editing terminal user interface.
package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"

	"github.com/micropad-cli/micropad/display"
	"github.com/micropad-cli/micropad/internal/ui"
	"github.com/micropad-cli/micropad/util"
)

// Init initializes the editor loop.
func (b *statefulBubble) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes incoming messages and dispatches them per editor state.
func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil

	case ThemeChangedMsg:
		b.styles = display.Default().Styles()
		return b, ui.Notify("Theme updated")

	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			b.rememberSession()
			return b, tea.Quit
		}
	}

	if cmd := b.notifier.Update(msg); cmd != nil {
		return b, cmd
	}

	switch b.state {
	case editingState:
		return b.updateEditing(msg)
	case findState:
		return b.updateFind(msg)
	case replaceState:
		return b.updateReplace(msg)
	case openState, saveAsState:
		return b.updatePath(msg)
	case confirmDiscardState:
		return b.updateConfirmDiscard(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.quit):
			if b.dirty() {
				b.newState(confirmDiscardState)
				return b, nil
			}
			b.rememberSession()
			return b, tea.Quit

		case key.Matches(msg, b.keymap.newFile):
			if b.dirty() {
				return b, ui.Notify("Unsaved changes — save or quit first")
			}
			b.textareaC.Reset()
			b.file = mo.None[string]()
			b.lastSaved = ""
			return b, nil

		case key.Matches(msg, b.keymap.open):
			if b.dirty() {
				return b, ui.Notify("Unsaved changes — save or quit first")
			}
			b.pathC.SetValue("")
			b.pathC.Focus()
			b.newState(openState)
			return b, textinput.Blink

		case key.Matches(msg, b.keymap.save):
			return b, b.saveCurrent()

		case key.Matches(msg, b.keymap.saveAs):
			b.pathC.SetValue(b.file.OrElse(""))
			b.pathC.Focus()
			b.newState(saveAsState)
			return b, textinput.Blink

		case key.Matches(msg, b.keymap.find):
			b.findC.Focus()
			b.refreshMatches(b.findC.Value())
			b.newState(findState)
			return b, textinput.Blink

		case key.Matches(msg, b.keymap.replace):
			if seed := b.findC.Value(); seed != "" && b.replaceFindC.Value() == "" {
				b.replaceFindC.SetValue(seed)
			}
			b.replaceFindC.Focus()
			b.replaceWithC.Blur()
			b.refreshMatches(b.replaceFindC.Value())
			b.newState(replaceState)
			return b, textinput.Blink

		case key.Matches(msg, b.keymap.toggleStatus):
			b.showStatus = !b.showStatus
			b.resize(b.width, b.height)
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.textareaC, cmd = b.textareaC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateFind(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back):
			b.findC.Blur()
			b.previousState()
			return b, nil

		case key.Matches(msg, b.keymap.next):
			b.refreshMatches(b.findC.Value())
			b.gotoMatch(nextMatch(b.matches, b.cursorOffset()+1))
			return b, nil

		case key.Matches(msg, b.keymap.prev):
			b.refreshMatches(b.findC.Value())
			b.gotoMatch(prevMatch(b.matches, b.cursorOffset()))
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.findC, cmd = b.findC.Update(msg)

	// Live search: land on the first match whenever the needle changes.
	if needle := b.findC.Value(); needle != b.lastNeedle {
		b.lastNeedle = needle
		b.refreshMatches(needle)
		b.gotoMatch(0)
	}
	return b, cmd
}

func (b *statefulBubble) updateReplace(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back):
			b.replaceFindC.Blur()
			b.replaceWithC.Blur()
			b.previousState()
			return b, nil

		case key.Matches(msg, b.keymap.switchField):
			if b.replaceFindC.Focused() {
				b.replaceFindC.Blur()
				b.replaceWithC.Focus()
			} else {
				b.replaceWithC.Blur()
				b.replaceFindC.Focus()
			}
			return b, textinput.Blink

		case key.Matches(msg, b.keymap.replaceOne):
			return b, b.replaceNext()

		case key.Matches(msg, b.keymap.replaceAll):
			return b, b.replaceEverything()
		}
	}

	var cmd tea.Cmd
	if b.replaceFindC.Focused() {
		b.replaceFindC, cmd = b.replaceFindC.Update(msg)
		b.refreshMatches(b.replaceFindC.Value())
	} else {
		b.replaceWithC, cmd = b.replaceWithC.Update(msg)
	}
	return b, cmd
}

func (b *statefulBubble) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back):
			b.pathC.Blur()
			b.previousState()
			return b, nil

		case key.Matches(msg, b.keymap.confirm):
			path := b.pathC.Value()
			if path == "" {
				return b, nil
			}
			b.pathC.Blur()

			var err error
			if b.state == openState {
				err = b.openPath(path)
			} else {
				err = b.saveTo(path)
			}
			b.previousState()
			if err != nil {
				return b, ui.Notify(fmt.Sprintf("Cannot use %s: %v", path, err))
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.pathC, cmd = b.pathC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateConfirmDiscard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.confirm):
			b.rememberSession()
			return b, tea.Quit

		case key.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}
	return b, nil
}

// saveCurrent writes the buffer to its file, or prompts for a path first.
func (b *statefulBubble) saveCurrent() tea.Cmd {
	path, ok := b.file.Get()
	if !ok {
		b.pathC.SetValue("")
		b.pathC.Focus()
		b.newState(saveAsState)
		return textinput.Blink
	}

	if err := b.saveTo(path); err != nil {
		return ui.Notify(fmt.Sprintf("Save failed: %v", err))
	}
	return ui.Notify("Saved")
}

// replaceNext replaces the match under or after the cursor and advances.
func (b *statefulBubble) replaceNext() tea.Cmd {
	needle := b.replaceFindC.Value()
	if needle == "" {
		return nil
	}

	b.refreshMatches(needle)
	idx := nextMatch(b.matches, b.cursorOffset())
	if idx < 0 {
		return ui.Notify("No matches")
	}

	offset := b.matches[idx]
	text := b.textareaC.Value()
	repl := b.replaceWithC.Value()
	b.textareaC.SetValue(text[:offset] + repl + text[offset+len(needle):])
	b.moveCursorTo(offset + len(repl))

	b.refreshMatches(needle)
	b.gotoMatch(nextMatch(b.matches, offset+len(repl)))
	return nil
}

// replaceEverything replaces every match and reports the count.
func (b *statefulBubble) replaceEverything() tea.Cmd {
	needle := b.replaceFindC.Value()
	if needle == "" {
		return nil
	}

	text, count := ReplaceAllFold(b.textareaC.Value(), needle, b.replaceWithC.Value())
	if count == 0 {
		return ui.Notify("No matches")
	}

	b.textareaC.SetValue(text)
	b.refreshMatches(needle)
	return ui.Notify(fmt.Sprintf("Replaced %s", util.Quantify(count, "occurrence", "occurrences")))
}
