package session

import (
	"github.com/google/uuid"
)

type EntryKind int

const (
	EntryLibrary EntryKind = iota
	EntryFile
	EntryFolder
)

// HistoryEntry is one visited location in a tab: the vault root listing, a
// file, or a folder listing. Preview applies to files only and is stored per
// entry, not per buffer, so two tabs can show the same file in different
// modes.
type HistoryEntry struct {
	Kind    EntryKind
	Path    string
	Preview bool
}

// Navigation is a request to visit a file or folder. Folder listings are
// recomputed at render time, so the request carries only the path.
type Navigation struct {
	Kind EntryKind
	Path string
}

func ToFile(path string) Navigation {
	return Navigation{Kind: EntryFile, Path: path}
}

func ToFolder(path string) Navigation {
	return Navigation{Kind: EntryFolder, Path: path}
}

// Tab is one independent navigation context. Its history always starts with
// a Library entry and the active index never leaves [0, len).
type Tab struct {
	ID      uuid.UUID
	history []HistoryEntry
	active  int
}

func NewTab() *Tab {
	return &Tab{
		ID:      uuid.New(),
		history: []HistoryEntry{{Kind: EntryLibrary}},
	}
}

// Navigate appends the entry for nav and makes it active. History is
// append-only: navigating from a non-tip position keeps the entries after
// the old position rather than pruning them.
func (t *Tab) Navigate(nav Navigation) {
	entry := HistoryEntry{Kind: nav.Kind, Path: nav.Path}
	t.history = append(t.history, entry)
	t.active = len(t.history) - 1
}

// ActiveEntry returns the entry at the active index. The index is kept in
// range by construction, so this always succeeds.
func (t *Tab) ActiveEntry() *HistoryEntry {
	return &t.history[t.active]
}

// Back moves the active index one entry toward the Library root. Reports
// whether it moved.
func (t *Tab) Back() bool {
	if t.active == 0 {
		return false
	}
	t.active--
	return true
}

// Forward moves the active index one entry toward the history tail.
func (t *Tab) Forward() bool {
	if t.active >= len(t.history)-1 {
		return false
	}
	t.active++
	return true
}

func (t *Tab) History() []HistoryEntry {
	return t.history
}

func (t *Tab) ActiveIndex() int {
	return t.active
}
