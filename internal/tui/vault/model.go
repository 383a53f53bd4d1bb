// Package vault is the TUI for browsing and editing a vault. It follows the
// bubbletea update loop: every user action and every completed piece of
// deferred work (file fetch, toast timer) arrives as a message and is
// applied to the session sequentially, so the session is never observed
// half-mutated.
package vault

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/weblib/internal/buffer"
	"github.com/Paintersrp/weblib/internal/cache"
	"github.com/Paintersrp/weblib/internal/config"
	"github.com/Paintersrp/weblib/internal/handler"
	"github.com/Paintersrp/weblib/internal/pathutil"
	"github.com/Paintersrp/weblib/internal/session"
	"github.com/Paintersrp/weblib/internal/toast"
)

const previewCacheSize = 32

type Model struct {
	cfg      *config.Config
	sess     *session.Session
	handler  *handler.FileHandler
	keys     *vaultKeyMap
	picker   filepicker.Model
	previews *cache.PreviewCache

	// listCursor is render-side state: the highlighted row of the active
	// listing. It resets on any navigation or tab change.
	listCursor int
	width      int
	height     int

	// startCmd is deferred work queued before the program starts, used by
	// `weblib open` to fetch the pre-opened file.
	startCmd tea.Cmd
}

func NewModel(cfg *config.Config) Model {
	h := handler.NewFileHandler(cfg.VaultDir)
	sess := session.New(h)
	if cfg.VaultDir != "" {
		// Config is validated at load; selection on a fresh session cannot
		// fail here.
		_ = sess.SelectVault(cfg.VaultDir)
	}

	startDir := cfg.VaultDir
	if startDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			startDir = home
		} else {
			startDir = "."
		}
	}

	return Model{
		cfg:      cfg,
		sess:     sess,
		handler:  h,
		keys:     newVaultKeyMap(),
		picker:   newFolderPicker(startDir),
		previews: cache.NewPreviewCache(previewCacheSize),
	}
}

// NewModelWithFile opens the browser with one tab already navigated to
// path, its content fetch queued as the program's first command.
func NewModelWithFile(cfg *config.Config, path string) Model {
	m := NewModel(cfg)
	if !m.sess.VaultSelected() || path == "" {
		return m
	}

	tab := m.sess.CreateTab()
	if req, err := m.sess.Navigate(tab.ID, session.ToFile(path)); err == nil && req != nil {
		m.startCmd = fetchFile(m.handler, req)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.startCmd != nil {
		cmds = append(cmds, m.startCmd)
	}
	if !m.sess.VaultSelected() {
		cmds = append(cmds, m.picker.Init())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fileLoadedMsg:
		m.sess.OnLoadComplete(msg.path, msg.content)
		return m, nil

	case fileLoadFailedMsg:
		m.sess.OnLoadFailed(msg.path, msg.err)
		return m, m.pushToast(
			fmt.Sprintf("Failed to load %s", filepath.Base(msg.path)),
			toast.VariantError,
		)

	case toastExpiredMsg:
		m.sess.Toasts().Remove(msg.id)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		if !m.sess.VaultSelected() {
			return m.updatePicker(msg)
		}
		return m.updateMain(msg)
	}

	// Remaining message kinds belong to the folder picker (its internal
	// directory reads).
	if !m.sess.VaultSelected() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		// A cancelled pick is an expected outcome, not an error; the
		// session is untouched.
		return m, m.pushToast("No folder selected", toast.VariantInfo)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		if err := m.sess.SelectVault(path); err != nil {
			return m, m.pushToast(fmt.Sprintf("Cannot open vault: %v", err), toast.VariantError)
		}
		m.handler = handler.NewFileHandler(path)
		if err := m.cfg.SetVaultDir(path); err != nil {
			return m, tea.Batch(cmd, m.pushToast(
				"Vault opened, but saving the choice failed",
				toast.VariantError,
			))
		}
		return m, tea.Batch(cmd, m.pushToast("Vault opened", toast.VariantInfo))
	}

	return m, cmd
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active, hasActive := m.sess.ActiveTab()

	switch {
	case key.Matches(msg, m.keys.newTab):
		m.sess.CreateTab()
		m.listCursor = 0
		return m, nil

	case key.Matches(msg, m.keys.closeTab):
		if hasActive {
			// Unknown ids cannot happen here; active always resolves.
			_ = m.sess.CloseTab(active.ID)
			m.listCursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.nextTab):
		m.cycleTab(1)
		return m, nil

	case key.Matches(msg, m.keys.prevTab):
		m.cycleTab(-1)
		return m, nil

	case key.Matches(msg, m.keys.back):
		if hasActive {
			if moved, _ := m.sess.Back(active.ID); moved {
				m.listCursor = 0
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.forward):
		if hasActive {
			if moved, _ := m.sess.Forward(active.ID); moved {
				m.listCursor = 0
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.togglePreview):
		if hasActive && active.ActiveEntry().Kind == session.EntryFile {
			preview := active.ActiveEntry().Preview
			if err := m.sess.SetPreview(active.ID, !preview); err != nil {
				return m, m.pushToast(err.Error(), toast.VariantError)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.copyPath):
		return m, m.copyActivePath()
	}

	if !hasActive {
		return m, nil
	}

	entry := active.ActiveEntry()
	if entry.Kind == session.EntryFile {
		return m.updateEditor(msg, active, entry)
	}
	return m.updateListing(msg, active, entry)
}

func (m Model) updateListing(msg tea.KeyMsg, active *session.Tab, entry *session.HistoryEntry) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cursorUp):
		if m.listCursor > 0 {
			m.listCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.cursorDown):
		// Bounded against the live listing so the cursor never walks past
		// the last row.
		if entries, err := m.handler.ReadDir(m.listingDir(entry)); err == nil &&
			m.listCursor < len(entries)-1 {
			m.listCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.openEntry):
		entries, err := m.handler.ReadDir(m.listingDir(entry))
		if err != nil || len(entries) == 0 {
			// The listing view already renders the failure inline.
			return m, nil
		}

		selected := entries[clamp(m.listCursor, 0, len(entries)-1)]
		nav := session.ToFile(selected.Path)
		if selected.IsDir {
			nav = session.ToFolder(selected.Path)
		}

		req, navErr := m.sess.Navigate(active.ID, nav)
		if navErr != nil {
			return m, m.pushToast(navErr.Error(), toast.VariantError)
		}
		m.listCursor = 0
		if req != nil {
			return m, fetchFile(m.handler, req)
		}
		return m, nil
	}

	return m, nil
}

// listingDir resolves the directory a listing entry displays: the entry's
// own path for folders, the vault root for the library.
func (m Model) listingDir(entry *session.HistoryEntry) string {
	if entry.Kind == session.EntryFolder {
		return entry.Path
	}
	return m.sess.VaultRoot()
}

func (m Model) updateEditor(msg tea.KeyMsg, active *session.Tab, entry *session.HistoryEntry) (tea.Model, tea.Cmd) {
	if entry.Preview {
		// Render-only: the editing surface is not attached in preview mode.
		return m, nil
	}

	buf, loaded := m.sess.Buffers().Get(entry.Path)

	switch {
	case key.Matches(msg, m.keys.selectAll):
		if loaded {
			_, _ = m.sess.Edit(active.ID, selectAllAction(buf.Content))
		}
		return m, nil

	case key.Matches(msg, m.keys.unselect):
		if loaded {
			_, _ = m.sess.Edit(active.ID, buffer.Unselect{})
		}
		return m, nil
	}

	action, ok := keyToAction(msg)
	if !ok || !loaded {
		// Keystrokes before the load completes edit nothing; the pane shows
		// the pending state instead of stale content.
		return m, nil
	}

	mutated, err := m.sess.Edit(active.ID, action)
	if mutated {
		m.previews.Invalidate(pathutil.BufferKey(entry.Path))
	}
	if err != nil {
		return m, m.pushToast(
			fmt.Sprintf("Failed to save %s", filepath.Base(entry.Path)),
			toast.VariantError,
		)
	}
	return m, nil
}

func (m *Model) cycleTab(delta int) {
	tabs := m.sess.Tabs()
	if len(tabs) == 0 {
		return
	}

	active, ok := m.sess.ActiveTab()
	if !ok {
		_ = m.sess.SelectTab(tabs[0].ID)
		m.listCursor = 0
		return
	}

	for i, t := range tabs {
		if t.ID == active.ID {
			next := (i + delta + len(tabs)) % len(tabs)
			_ = m.sess.SelectTab(tabs[next].ID)
			m.listCursor = 0
			return
		}
	}
}

func (m Model) copyActivePath() tea.Cmd {
	active, ok := m.sess.ActiveTab()
	if !ok {
		return nil
	}

	entry := active.ActiveEntry()
	path := m.sess.VaultRoot()
	if entry.Kind != session.EntryLibrary {
		path = entry.Path
	}

	if err := clipboard.WriteAll(path); err != nil {
		return m.pushToast("Clipboard unavailable", toast.VariantError)
	}
	return m.pushToast("Path copied", toast.VariantInfo)
}

func (m Model) pushToast(title string, variant toast.Variant) tea.Cmd {
	t := m.sess.Toasts().Push(title, variant)
	return expireToast(t.ID)
}

func (m Model) paneHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func (m Model) View() string {
	if !m.sess.VaultSelected() {
		return m.viewPicker()
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), m.viewPane())
	footer := helpStyle.Render(
		"ctrl+t new tab · ctrl+w close · ctrl+←/→ switch · alt+←/→ history · ctrl+p preview · ctrl+y copy path · ctrl+c quit",
	)

	body := lipgloss.JoinVertical(lipgloss.Left, main, "", footer)
	return m.overlayToasts(appStyle.Render(body))
}

// Run starts the vault browser over the loaded config.
func Run(cfg *config.Config) error {
	return runProgram(NewModel(cfg))
}

// RunWithFile starts the browser with path already open in a tab.
func RunWithFile(cfg *config.Config, path string) error {
	return runProgram(NewModelWithFile(cfg, path))
}

func runProgram(m Model) error {
	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
