package vault

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/weblib/internal/config"
	"github.com/Paintersrp/weblib/internal/session"
	"github.com/Paintersrp/weblib/internal/toast"
)

func newTestModel(t *testing.T) (Model, string) {
	t.Helper()

	home := t.TempDir()
	vaultDir := t.TempDir()

	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}
	cfg, err := config.FromFile(config.GetConfigPath(home))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := cfg.SetVaultDir(vaultDir); err != nil {
		t.Fatalf("SetVaultDir returned error: %v", err)
	}

	return NewModel(cfg), vaultDir
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned unexpected model type %T", updated)
	}
	return model, cmd
}

func TestFetchFileProducesLoadedMsg(t *testing.T) {
	t.Parallel()

	m, vaultDir := newTestModel(t)
	path := filepath.Join(vaultDir, "note.md")
	if err := os.WriteFile(path, []byte("# Hi"), 0o644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	tab := m.sess.CreateTab()
	req, err := m.sess.Navigate(tab.ID, session.ToFile(path))
	if err != nil {
		t.Fatalf("Navigate returned error: %v", err)
	}
	if req == nil {
		t.Fatal("expected a load request")
	}

	msg := fetchFile(m.handler, req)()
	loaded, ok := msg.(fileLoadedMsg)
	if !ok {
		t.Fatalf("expected fileLoadedMsg, got %T", msg)
	}
	if loaded.content != "# Hi" {
		t.Fatalf("expected '# Hi', got %q", loaded.content)
	}

	m, _ = apply(t, m, msg)
	if !m.sess.Buffers().Contains(path) {
		t.Fatal("expected buffer after load message")
	}
}

func TestFetchFileFailureMarksLoadFailed(t *testing.T) {
	t.Parallel()

	m, vaultDir := newTestModel(t)
	missing := filepath.Join(vaultDir, "missing.md")

	tab := m.sess.CreateTab()
	req, _ := m.sess.Navigate(tab.ID, session.ToFile(missing))

	msg := fetchFile(m.handler, req)()
	if _, ok := msg.(fileLoadFailedMsg); !ok {
		t.Fatalf("expected fileLoadFailedMsg, got %T", msg)
	}

	m, cmd := apply(t, m, msg)

	if st := m.sess.LoadStateFor(missing); st.Phase != session.LoadFailed {
		t.Fatalf("expected failed load state, got %v", st.Phase)
	}
	if m.sess.Toasts().Len() != 1 {
		t.Fatalf("expected an error toast, got %d", m.sess.Toasts().Len())
	}
	if cmd == nil {
		t.Fatal("expected an expiry command for the toast")
	}
}

func TestToastExpiryRemovesToast(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	pushed := m.sess.Toasts().Push("Saved", toast.VariantInfo)
	m, _ = apply(t, m, toastExpiredMsg{id: pushed.ID})

	if m.sess.Toasts().Len() != 0 {
		t.Fatalf("expected empty toast queue, got %d", m.sess.Toasts().Len())
	}

	// A second expiry for the same id is a no-op.
	m, _ = apply(t, m, toastExpiredMsg{id: pushed.ID})
	if m.sess.Toasts().Len() != 0 {
		t.Fatal("duplicate expiry mutated the queue")
	}
}

func TestEditorKeystrokeWritesThrough(t *testing.T) {
	t.Parallel()

	m, vaultDir := newTestModel(t)
	path := filepath.Join(vaultDir, "note.md")
	if err := os.WriteFile(path, []byte("# Hi"), 0o644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	tab := m.sess.CreateTab()
	m.sess.Navigate(tab.ID, session.ToFile(path))
	m.sess.OnLoadComplete(path, "# Hi")

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}})

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(onDisk) != "# Hi!" {
		t.Fatalf("expected '# Hi!' on disk, got %q", onDisk)
	}
}

func TestPreviewModeIgnoresKeystrokes(t *testing.T) {
	t.Parallel()

	m, vaultDir := newTestModel(t)
	path := filepath.Join(vaultDir, "note.md")
	if err := os.WriteFile(path, []byte("# Hi"), 0o644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	tab := m.sess.CreateTab()
	m.sess.Navigate(tab.ID, session.ToFile(path))
	m.sess.OnLoadComplete(path, "# Hi")
	if err := m.sess.SetPreview(tab.ID, true); err != nil {
		t.Fatalf("SetPreview returned error: %v", err)
	}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	onDisk, _ := os.ReadFile(path)
	if string(onDisk) != "# Hi" {
		t.Fatalf("preview-mode keystroke reached the file: %q", onDisk)
	}
}

func TestKeystrokeBeforeLoadCompletesEditsNothing(t *testing.T) {
	t.Parallel()

	m, vaultDir := newTestModel(t)
	path := filepath.Join(vaultDir, "note.md")

	tab := m.sess.CreateTab()
	m.sess.Navigate(tab.ID, session.ToFile(path))

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	if m.sess.Buffers().Contains(path) {
		t.Fatal("no buffer should exist before the load completes")
	}
}

func TestOpenEntryNavigatesAndRequestsLoad(t *testing.T) {
	t.Parallel()

	m, vaultDir := newTestModel(t)
	path := filepath.Join(vaultDir, "note.md")
	if err := os.WriteFile(path, []byte("# Hi"), 0o644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	m.sess.CreateTab()

	var cmd tea.Cmd
	m, cmd = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a fetch command for the opened file")
	}

	active, _ := m.sess.ActiveTab()
	entry := active.ActiveEntry()
	if entry.Kind != session.EntryFile || entry.Path != path {
		t.Fatalf("unexpected active entry %+v", entry)
	}
	if st := m.sess.LoadStateFor(path); st.Phase != session.LoadPending {
		t.Fatalf("expected pending load, got %v", st.Phase)
	}

	m, _ = apply(t, m, cmd())
	if !m.sess.Buffers().Contains(path) {
		t.Fatal("expected buffer after running the fetch command")
	}
}

func TestTabKeysMaintainActiveInvariant(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if len(m.sess.Tabs()) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(m.sess.Tabs()))
	}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	active, ok := m.sess.ActiveTab()
	if !ok {
		t.Fatal("expected an active tab after closing one of two")
	}
	if active.ID != m.sess.Tabs()[0].ID {
		t.Fatal("expected the remaining tab to be active")
	}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	if _, ok := m.sess.ActiveTab(); ok {
		t.Fatal("expected no active tab after closing the last")
	}
}

func TestLoadFailedStateRendersInline(t *testing.T) {
	t.Parallel()

	m, vaultDir := newTestModel(t)
	path := filepath.Join(vaultDir, "gone.md")

	tab := m.sess.CreateTab()
	m.sess.Navigate(tab.ID, session.ToFile(path))
	m.sess.OnLoadFailed(path, errors.New("no such file"))

	view := m.viewPane()
	if view == "" {
		t.Fatal("expected rendered pane")
	}
}

func TestListingCursorStopsAtLastRow(t *testing.T) {
	t.Parallel()

	m, vaultDir := newTestModel(t)
	for _, name := range []string{"a.md", "b.md"} {
		if err := os.WriteFile(filepath.Join(vaultDir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed write failed: %v", err)
		}
	}

	m.sess.CreateTab()

	for i := 0; i < 5; i++ {
		m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.listCursor != 1 {
		t.Fatalf("expected cursor pinned at last row 1, got %d", m.listCursor)
	}

	// One up-press recovers immediately; no off-screen positions accrued.
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.listCursor != 0 {
		t.Fatalf("expected cursor at 0 after one up, got %d", m.listCursor)
	}
}

func TestEscClearsSelectionWithoutSwitchingTabs(t *testing.T) {
	t.Parallel()

	m, vaultDir := newTestModel(t)
	path := filepath.Join(vaultDir, "note.md")
	if err := os.WriteFile(path, []byte("# Hi"), 0o644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	m.sess.CreateTab()
	tab := m.sess.CreateTab()
	m.sess.Navigate(tab.ID, session.ToFile(path))
	m.sess.OnLoadComplete(path, "# Hi")

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	active, ok := m.sess.ActiveTab()
	if !ok || active.ID != tab.ID {
		t.Fatal("esc must not change the active tab")
	}
	buf, _ := m.sess.Buffers().Get(path)
	if _, _, selected := buf.Content.Selection(); selected {
		t.Fatal("esc should have cleared the selection")
	}
}
