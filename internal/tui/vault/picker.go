package vault

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// newFolderPicker configures the vault selection screen: directories only,
// enter chooses the highlighted directory, right/l descends into it. Escape
// is handled by the caller as a cancelled pick, never as an error.
func newFolderPicker(startDir string) filepicker.Model {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = false
	fp.Height = 16

	fp.KeyMap.Open = key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "descend"),
	)
	fp.KeyMap.Select = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "choose vault"),
	)

	return fp
}

func (m Model) viewPicker() string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Choose a vault folder"),
		"",
		m.picker.View(),
		"",
		helpStyle.Render("↵ choose vault · →/l descend · ←/h up · esc cancel"),
	)

	return m.overlayToasts(appStyle.Render(body))
}
