package vault

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/weblib/internal/buffer"
)

// keyToAction translates a terminal key into an editor action. Keys that
// have no editing meaning return false; chorded app keys are filtered out
// before this is reached.
func keyToAction(msg tea.KeyMsg) (buffer.Action, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		return buffer.Insert{Text: string(msg.Runes)}, true
	case tea.KeySpace:
		return buffer.Insert{Text: " "}, true
	case tea.KeyEnter:
		return buffer.Insert{Text: "\n"}, true
	case tea.KeyTab:
		return buffer.Insert{Text: "\t"}, true
	case tea.KeyBackspace:
		return buffer.Backspace{}, true
	case tea.KeyDelete:
		return buffer.Delete{}, true
	case tea.KeyLeft:
		return buffer.Move{Motion: buffer.MotionLeft}, true
	case tea.KeyRight:
		return buffer.Move{Motion: buffer.MotionRight}, true
	case tea.KeyUp:
		return buffer.Move{Motion: buffer.MotionUp}, true
	case tea.KeyDown:
		return buffer.Move{Motion: buffer.MotionDown}, true
	case tea.KeyHome:
		return buffer.Move{Motion: buffer.MotionLineStart}, true
	case tea.KeyEnd:
		return buffer.Move{Motion: buffer.MotionLineEnd}, true
	case tea.KeyPgUp:
		return buffer.Move{Motion: buffer.MotionDocStart}, true
	case tea.KeyPgDown:
		return buffer.Move{Motion: buffer.MotionDocEnd}, true
	}

	return nil, false
}

// selectAllAction builds the whole-buffer selection for the current content.
func selectAllAction(c *buffer.Content) buffer.Action {
	lines := strings.Split(c.Text(), "\n")
	last := len(lines) - 1
	return buffer.Select{
		From: buffer.Position{},
		To:   buffer.Position{Row: last, Col: len([]rune(lines[last]))},
	}
}

// renderEditor draws the buffer as plain text with a block cursor and a
// reverse-video selection span.
func renderEditor(c *buffer.Content) string {
	lines := strings.Split(c.Text(), "\n")
	cursor := c.Cursor()
	from, to, selected := c.Selection()

	var b strings.Builder
	for row, line := range lines {
		if row > 0 {
			b.WriteByte('\n')
		}
		runes := []rune(line)

		switch {
		case selected && rowInSelection(row, from.Row, to.Row):
			b.WriteString(renderSelectedLine(runes, row, from, to))
		case row == cursor.Row:
			b.WriteString(renderCursorLine(runes, cursor.Col))
		default:
			b.WriteString(string(runes))
		}
	}

	return b.String()
}

func rowInSelection(row, fromRow, toRow int) bool {
	return row >= fromRow && row <= toRow
}

func renderSelectedLine(runes []rune, row int, from, to buffer.Position) string {
	start := 0
	if row == from.Row {
		start = from.Col
	}
	end := len(runes)
	if row == to.Row {
		end = to.Col
	}
	if start > len(runes) {
		start = len(runes)
	}
	if end > len(runes) {
		end = len(runes)
	}

	return string(runes[:start]) +
		cursorStyle.Render(string(runes[start:end])) +
		string(runes[end:])
}

func renderCursorLine(runes []rune, col int) string {
	if col >= len(runes) {
		return string(runes) + cursorStyle.Render(" ")
	}
	return string(runes[:col]) +
		cursorStyle.Render(string(runes[col])) +
		string(runes[col+1:])
}
