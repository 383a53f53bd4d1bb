// Package session is the state engine behind the vault browser: the tab set
// with per-tab navigation history, the shared buffer cache, the load states
// of in-flight file fetches, and the notification queue. A Session is only
// ever mutated by one caller at a time; deferred work (file reads, toast
// timers) completes by re-entering the session through OnLoadComplete,
// OnLoadFailed, or the toast queue.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Paintersrp/weblib/internal/buffer"
	"github.com/Paintersrp/weblib/internal/pathutil"
	"github.com/Paintersrp/weblib/internal/toast"
)

var (
	ErrUnknownTab    = errors.New("unknown tab id")
	ErrVaultSelected = errors.New("vault already selected")
	ErrNoVault       = errors.New("no vault selected")
	ErrNotFile       = errors.New("active entry is not a file")
	ErrPreviewMode   = errors.New("buffer is in preview mode")
)

// LoadPhase describes what the session knows about a file's content fetch.
type LoadPhase int

const (
	LoadNone LoadPhase = iota
	LoadPending
	LoadFailed
	LoadDone
)

type LoadState struct {
	Phase LoadPhase
	Err   error
}

// LoadRequest is a deferred unit of work: read the file fully into memory
// and report back via OnLoadComplete or OnLoadFailed. The session does not
// track or cancel it; a request for a path the user has navigated away from
// still installs into the shared cache.
type LoadRequest struct {
	Path string
}

// Session is the single mutable state root. The render layer reads it after
// every applied intent and never writes to it.
type Session struct {
	vaultRoot string
	tabs      []*Tab
	activeTab uuid.UUID
	buffers   *buffer.Cache
	toasts    *toast.Queue
	loads     map[string]LoadState
}

// New creates a session with no vault selected. writer is used for the
// buffer cache's write-through edits.
func New(writer buffer.Writer) *Session {
	return &Session{
		buffers: buffer.NewCache(writer),
		toasts:  toast.NewQueue(),
		loads:   make(map[string]LoadState),
	}
}

// SelectVault transitions from the vault-unselected screen. There is no
// reverse transition: selecting a second vault is rejected.
func (s *Session) SelectVault(root string) error {
	if s.vaultRoot != "" {
		return ErrVaultSelected
	}
	if root == "" {
		return ErrNoVault
	}
	s.vaultRoot = pathutil.NormalizePath(root)
	return nil
}

func (s *Session) VaultSelected() bool {
	return s.vaultRoot != ""
}

func (s *Session) VaultRoot() string {
	return s.vaultRoot
}

func (s *Session) Tabs() []*Tab {
	return s.tabs
}

func (s *Session) Buffers() *buffer.Cache {
	return s.buffers
}

func (s *Session) Toasts() *toast.Queue {
	return s.toasts
}

// CreateTab appends a fresh Library tab and makes it active.
func (s *Session) CreateTab() *Tab {
	t := NewTab()
	s.tabs = append(s.tabs, t)
	s.activeTab = t.ID
	return t
}

// SelectTab activates the tab with the given id. An unknown id leaves the
// session unchanged.
func (s *Session) SelectTab(id uuid.UUID) error {
	if _, err := s.tab(id); err != nil {
		return err
	}
	s.activeTab = id
	return nil
}

// CloseTab removes a tab. Buffers it referenced stay cached. When the active
// tab closes, the previous tab in display order becomes active, or none if
// it was the last.
func (s *Session) CloseTab(id uuid.UUID) error {
	idx := -1
	for i, t := range s.tabs {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownTab, id)
	}

	s.tabs = append(s.tabs[:idx], s.tabs[idx+1:]...)

	if s.activeTab == id {
		s.activeTab = uuid.Nil
		if len(s.tabs) > 0 {
			if idx > 0 {
				s.activeTab = s.tabs[idx-1].ID
			} else {
				s.activeTab = s.tabs[0].ID
			}
		}
	}
	return nil
}

// ActiveTab returns the active tab, if any. The id always resolves when set:
// CloseTab repairs it and nothing else removes tabs.
func (s *Session) ActiveTab() (*Tab, bool) {
	if s.activeTab == uuid.Nil {
		return nil, false
	}
	t, err := s.tab(s.activeTab)
	if err != nil {
		return nil, false
	}
	return t, true
}

// Navigate applies a navigation request to the tab. When the target is a
// file with no installed buffer it returns a LoadRequest for the caller to
// run as deferred work. Requests are not deduplicated: a second navigation
// to a still-loading path yields a second request, and the last install
// wins.
func (s *Session) Navigate(tabID uuid.UUID, nav Navigation) (*LoadRequest, error) {
	t, err := s.tab(tabID)
	if err != nil {
		return nil, err
	}

	t.Navigate(nav)

	if nav.Kind != EntryFile || s.buffers.Contains(nav.Path) {
		return nil, nil
	}

	key := pathutil.BufferKey(nav.Path)
	s.loads[key] = LoadState{Phase: LoadPending}
	return &LoadRequest{Path: nav.Path}, nil
}

// OnLoadComplete installs the fetched text into the shared cache. It is
// order-independent: a load for a path no tab references anymore still
// installs and is simply unused.
func (s *Session) OnLoadComplete(path, raw string) {
	s.buffers.Install(path, raw)
	delete(s.loads, pathutil.BufferKey(path))
}

// OnLoadFailed marks the path's fetch as failed so the render layer shows an
// explicit failure instead of a perpetual pending state.
func (s *Session) OnLoadFailed(path string, err error) {
	s.loads[pathutil.BufferKey(path)] = LoadState{Phase: LoadFailed, Err: err}
}

// LoadStateFor reports what the render layer should show for a file entry's
// content: done once a buffer is installed, otherwise whatever the last
// fetch attempt left behind.
func (s *Session) LoadStateFor(path string) LoadState {
	if s.buffers.Contains(path) {
		return LoadState{Phase: LoadDone}
	}
	if st, ok := s.loads[pathutil.BufferKey(path)]; ok {
		return st
	}
	return LoadState{Phase: LoadNone}
}

// SetPreview toggles render-as-markdown for the tab's active entry. Only
// file entries carry the flag.
func (s *Session) SetPreview(tabID uuid.UUID, on bool) error {
	t, err := s.tab(tabID)
	if err != nil {
		return err
	}
	entry := t.ActiveEntry()
	if entry.Kind != EntryFile {
		return ErrNotFile
	}
	entry.Preview = on
	return nil
}

// Edit applies an editor action to the buffer behind the tab's active file
// entry. Edits are rejected in preview mode; mutating actions write through
// to disk via the cache.
func (s *Session) Edit(tabID uuid.UUID, action buffer.Action) (bool, error) {
	t, err := s.tab(tabID)
	if err != nil {
		return false, err
	}
	entry := t.ActiveEntry()
	if entry.Kind != EntryFile {
		return false, ErrNotFile
	}
	if entry.Preview {
		return false, ErrPreviewMode
	}
	return s.buffers.Apply(entry.Path, action)
}

// Back and Forward move the tab's active index within its history without
// changing the history itself.
func (s *Session) Back(tabID uuid.UUID) (bool, error) {
	t, err := s.tab(tabID)
	if err != nil {
		return false, err
	}
	return t.Back(), nil
}

func (s *Session) Forward(tabID uuid.UUID) (bool, error) {
	t, err := s.tab(tabID)
	if err != nil {
		return false, err
	}
	return t.Forward(), nil
}

func (s *Session) tab(id uuid.UUID) (*Tab, error) {
	for _, t := range s.tabs {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTab, id)
}
