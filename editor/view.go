// Package editor provides the text editing terminal user interface.
package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/micropad-cli/micropad/util"
)

func (b *statefulBubble) View() string {
	sections := []string{b.viewHeader()}

	switch b.state {
	case findState:
		sections = append(sections, b.viewFindBar())
	case replaceState:
		sections = append(sections, b.viewReplaceBar())
	case openState:
		sections = append(sections, b.viewPathBar("Open: "))
	case saveAsState:
		sections = append(sections, b.viewPathBar("Save as: "))
	case confirmDiscardState:
		sections = append(sections, b.viewConfirmBar())
	}

	sections = append(sections, b.viewBuffer())

	if b.showStatus {
		sections = append(sections, b.viewStatusBar())
	}
	sections = append(sections, b.helpC.View(b.keymap))

	return b.notifier.View(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (b *statefulBubble) viewHeader() string {
	title := truncate.StringWithTail(b.title(), uint(util.Max(b.width, 8)), "…")
	if b.styles.Themed {
		return b.styles.Header.Width(util.Max(b.width, 1)).Render(title)
	}
	return lipgloss.NewStyle().Bold(true).Render(title)
}

func (b *statefulBubble) viewBuffer() string {
	if b.styles.Themed {
		return b.styles.Editor.Render(b.textareaC.View())
	}
	return b.textareaC.View()
}

func (b *statefulBubble) viewFindBar() string {
	counter := "no matches"
	if len(b.matches) > 0 {
		counter = fmt.Sprintf("%d/%s", b.activeMatch+1, util.Quantify(len(b.matches), "match", "matches"))
	}
	return b.barStyle().Render(b.findC.View() + "  " + counter)
}

func (b *statefulBubble) viewReplaceBar() string {
	return b.barStyle().Render(b.replaceFindC.View() + "  " + b.replaceWithC.View())
}

func (b *statefulBubble) viewPathBar(prompt string) string {
	return b.barStyle().Render(prompt + b.pathC.View())
}

func (b *statefulBubble) viewConfirmBar() string {
	return b.barStyle().Render("Discard unsaved changes? enter to discard, esc to keep editing")
}

func (b *statefulBubble) viewStatusBar() string {
	line := b.statusLine()
	if pad := b.width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	if b.styles.Themed {
		return b.styles.Window.Faint(true).Render(line)
	}
	return lipgloss.NewStyle().Faint(true).Render(line)
}

func (b *statefulBubble) barStyle() lipgloss.Style {
	if b.styles.Themed {
		return b.styles.Entry.Width(util.Max(b.width, 1))
	}
	return lipgloss.NewStyle()
}
