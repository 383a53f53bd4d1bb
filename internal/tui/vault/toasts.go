package vault

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/weblib/internal/toast"
)

// overlayToasts appends the active toast stack under the base view, aligned
// to the right edge, newest at the bottom.
func (m Model) overlayToasts(base string) string {
	active := m.sess.Toasts().Active()
	if len(active) == 0 {
		return base
	}

	var rendered []string
	for _, t := range active {
		switch t.Variant {
		case toast.VariantError:
			rendered = append(rendered, toastErrorStyle.Render(t.Title))
		default:
			rendered = append(rendered, toastInfoStyle.Render(t.Title))
		}
	}

	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	if m.width > 0 {
		stack = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, stack)
	}

	return strings.Join([]string{base, stack}, "\n")
}
