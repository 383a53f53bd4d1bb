package vault

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Paintersrp/weblib/internal/handler"
	"github.com/Paintersrp/weblib/internal/session"
	"github.com/Paintersrp/weblib/internal/toast"
)

// Messages produced by deferred work. Each completion re-enters the session
// through the sequential Update loop; nothing mutates session state from
// another goroutine.

type fileLoadedMsg struct {
	path    string
	content string
}

type fileLoadFailedMsg struct {
	path string
	err  error
}

type toastExpiredMsg struct {
	id uuid.UUID
}

// fetchFile runs one LoadRequest as deferred work: a full read of the file
// into memory.
func fetchFile(h *handler.FileHandler, req *session.LoadRequest) tea.Cmd {
	path := req.Path
	return func() tea.Msg {
		content, err := h.ReadFile(path)
		if err != nil {
			return fileLoadFailedMsg{path: path, err: err}
		}
		return fileLoadedMsg{path: path, content: string(content)}
	}
}

// expireToast schedules the fixed-duration expiry for one toast.
func expireToast(id uuid.UUID) tea.Cmd {
	return tea.Tick(toast.Timeout, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
