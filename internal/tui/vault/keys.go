package vault

import "github.com/charmbracelet/bubbles/key"

type vaultKeyMap struct {
	quit          key.Binding
	newTab        key.Binding
	closeTab      key.Binding
	nextTab       key.Binding
	prevTab       key.Binding
	back          key.Binding
	forward       key.Binding
	togglePreview key.Binding
	copyPath      key.Binding

	// listing mode
	cursorUp   key.Binding
	cursorDown key.Binding
	openEntry  key.Binding

	// edit mode
	selectAll key.Binding
	unselect  key.Binding
}

func newVaultKeyMap() *vaultKeyMap {
	return &vaultKeyMap{
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		newTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "new tab"),
		),
		closeTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "ctrl+]"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "shift+tab"),
			key.WithHelp("ctrl+←", "previous tab"),
		),
		back: key.NewBinding(
			key.WithKeys("alt+left", "ctrl+b"),
			key.WithHelp("alt+←", "history back"),
		),
		forward: key.NewBinding(
			key.WithKeys("alt+right", "ctrl+f"),
			key.WithHelp("alt+→", "history forward"),
		),
		togglePreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "toggle preview"),
		),
		copyPath: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy path"),
		),
		cursorUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		cursorDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		openEntry: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		selectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		unselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
	}
}
