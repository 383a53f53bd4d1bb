package vault

import (
	"strings"

	"github.com/Paintersrp/weblib/internal/pathutil"
	"github.com/Paintersrp/weblib/internal/session"
)

// tabLabel names a tab after its active entry: the vault library or the
// base name of the visited path.
func tabLabel(vaultDir string, t *session.Tab) string {
	entry := t.ActiveEntry()
	switch entry.Kind {
	case session.EntryLibrary:
		return "Library"
	case session.EntryFile, session.EntryFolder:
		return pathutil.DisplayName(vaultDir, entry.Path)
	}
	return "Library"
}

func (m Model) viewSidebar() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("weblib"))
	b.WriteByte('\n')

	active, hasActive := m.sess.ActiveTab()
	for _, t := range m.sess.Tabs() {
		b.WriteByte('\n')
		label := tabLabel(m.sess.VaultRoot(), t)
		if hasActive && t.ID == active.ID {
			b.WriteString(activeTabStyle.Render(label))
		} else {
			b.WriteString(inactiveTabStyle.Render(label))
		}
	}

	if len(m.sess.Tabs()) == 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("ctrl+t opens the library"))
	}

	return sidebarStyle.Height(m.paneHeight()).Render(b.String())
}
