// Package editor provides the text editing terminal user interface.
package editor

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/micropad-cli/micropad/constant"
	"github.com/micropad-cli/micropad/display"
	"github.com/micropad-cli/micropad/filesystem"
	"github.com/micropad-cli/micropad/internal/ui"
	"github.com/micropad-cli/micropad/key"
	session "github.com/micropad-cli/micropad/state"
	"github.com/micropad-cli/micropad/util"
)

// statefulBubble encapsulates the editor's state: the buffer, the inline
// bars, the active style bundle and the workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	textareaC    textarea.Model
	findC        textinput.Model
	replaceFindC textinput.Model
	replaceWithC textinput.Model
	pathC        textinput.Model
	helpC        help.Model

	styles display.Styles

	file       mo.Option[string]
	lastSaved  string
	showStatus bool

	// find state
	matches     []int
	activeMatch int
	lastNeedle  string

	width, height int
	notifier      *ui.Model

	options *Options
}

// setState performs a synchronous transition of both the editor workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState facilitates an idempotent transition to a target state, recording the previous state in the navigation history.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

// previousState restores the editor to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// dirty reports whether the buffer differs from its last saved form.
func (b *statefulBubble) dirty() bool {
	return b.textareaC.Value() != b.lastSaved
}

// title renders the header line: application name, file name and dirty marker.
func (b *statefulBubble) title() string {
	name := "Untitled"
	if path, ok := b.file.Get(); ok {
		name = filepath.Base(path)
	}
	marker := ""
	if b.dirty() {
		marker = " •"
	}
	return fmt.Sprintf("%s — %s%s", util.Capitalize(constant.Micropad), name, marker)
}

// statusLine renders the footer: cursor position and buffer length.
func (b *statefulBubble) statusLine() string {
	line := b.textareaC.Line() + 1
	col := b.textareaC.LineInfo().ColumnOffset + 1
	return fmt.Sprintf("Ln: %d  Col: %d  |  Length: %d", line, col, b.textareaC.Length())
}

// openPath loads a file into the buffer and records it as the session file.
func (b *statefulBubble) openPath(path string) error {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return err
	}

	b.textareaC.SetValue(string(data))
	b.textareaC.MoveToBegin()
	b.file = mo.Some(path)
	b.lastSaved = b.textareaC.Value()
	b.rememberSession()
	return nil
}

// saveTo writes the buffer to the given path and records it as the session file.
func (b *statefulBubble) saveTo(path string) error {
	if err := filesystem.API().WriteFile(path, []byte(b.textareaC.Value()), 0o644); err != nil {
		return err
	}

	b.file = mo.Some(path)
	b.lastSaved = b.textareaC.Value()
	b.rememberSession()
	return nil
}

// rememberSession persists the session when enabled in the configuration.
func (b *statefulBubble) rememberSession() {
	if !viper.GetBool(key.EditorSaveState) {
		return
	}

	s := session.Load()
	s.Path = b.file
	s.Geometry.Width = util.Max(b.width, 1)
	s.Geometry.Height = util.Max(b.height, 1)
	_ = s.Save()
}

// refreshMatches recomputes the match offsets for the given needle.
func (b *statefulBubble) refreshMatches(needle string) {
	b.matches = matchOffsets(b.textareaC.Value(), needle)
	b.activeMatch = -1
}

// gotoMatch moves the cursor to the given match index.
func (b *statefulBubble) gotoMatch(idx int) {
	if idx < 0 || idx >= len(b.matches) {
		return
	}

	b.activeMatch = idx
	b.moveCursorTo(b.matches[idx])
}

// moveCursorTo places the buffer cursor at the given byte offset.
func (b *statefulBubble) moveCursorTo(offset int) {
	line, _ := lineCol(b.textareaC.Value(), offset)

	b.textareaC.MoveToBegin()
	for range line {
		b.textareaC.CursorDown()
	}

	before := b.textareaC.Value()[:offset]
	if last := strings.LastIndexByte(before, '\n'); last >= 0 {
		before = before[last+1:]
	}
	b.textareaC.SetCursor(utf8.RuneCountInString(before))
}

// cursorOffset returns the byte offset of the buffer cursor.
func (b *statefulBubble) cursorOffset() int {
	text := b.textareaC.Value()
	lines := strings.Split(text, "\n")
	row := util.Min(b.textareaC.Line(), len(lines)-1)

	offset := 0
	for _, l := range lines[:row] {
		offset += len(l) + 1
	}

	col := b.textareaC.LineInfo().ColumnOffset
	runes := []rune(lines[row])
	col = util.Min(col, len(runes))
	return offset + len(string(runes[:col]))
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	b.width = width
	b.height = height

	chrome := 2 // header + help
	if b.showStatus {
		chrome++
	}
	if b.state == findState || b.state == replaceState || b.state == openState || b.state == saveAsState {
		chrome++
	}

	b.textareaC.SetWidth(width)
	b.textareaC.SetHeight(util.Max(height-chrome, 1))

	for _, input := range []*textinput.Model{&b.findC, &b.replaceFindC, &b.replaceWithC, &b.pathC} {
		input.Width = util.Max(width-len(input.Prompt)-2, 10)
	}
	b.helpC.Width = width
}

// newBubble performs a complete initialization of the editor's primary UI model.
func newBubble(options *Options) *statefulBubble {
	ta := textarea.New()
	ta.Placeholder = ""
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Focus()

	makeInput := func(placeholder string) textinput.Model {
		input := textinput.New()
		input.Placeholder = placeholder
		return input
	}

	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),

		textareaC:    ta,
		findC:        makeInput("Find…"),
		replaceFindC: makeInput("Find…"),
		replaceWithC: makeInput("Replace with…"),
		pathC:        makeInput("Path…"),
		helpC:        help.New(),

		styles:     display.Default().Styles(),
		showStatus: viper.GetBool(key.EditorShowStatus),
		activeMatch: -1,

		notifier: &ui.Model{},
		options:  options,
	}

	bubble.setState(editingState)
	return &bubble
}
