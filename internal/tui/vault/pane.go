package vault

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/weblib/internal/markdown"
	"github.com/Paintersrp/weblib/internal/pathutil"
	"github.com/Paintersrp/weblib/internal/session"
)

func (m Model) viewPane() string {
	active, ok := m.sess.ActiveTab()
	if !ok {
		return pendingStyle.Render("No active tab. ctrl+t opens the library")
	}

	entry := active.ActiveEntry()
	switch entry.Kind {
	case session.EntryLibrary:
		return m.viewListing(m.sess.VaultRoot(), "Library")
	case session.EntryFolder:
		return m.viewListing(entry.Path, filepath.Base(entry.Path))
	case session.EntryFile:
		return m.viewFile(entry)
	}
	return ""
}

// viewListing renders a directory listing with the highlighted row's
// markdown preview beside it. The listing is read from disk on every render;
// only file previews are cached.
func (m Model) viewListing(dir, title string) string {
	entries, err := m.handler.ReadDir(dir)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Failed to read directory: %v", err))
	}

	cursor := clamp(m.listCursor, 0, len(entries)-1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')

	if len(entries) == 0 {
		b.WriteByte('\n')
		b.WriteString(pendingStyle.Render("(empty)"))
	}

	for i, e := range entries {
		b.WriteByte('\n')
		label := e.Name
		if e.IsDir {
			label += "/"
		}
		switch {
		case i == cursor:
			b.WriteString(selectedItemStyle.Render(label))
		case e.IsDir:
			b.WriteString(folderItemStyle.Render(label))
		default:
			b.WriteString(itemStyle.Render(label))
		}
	}

	listing := b.String()

	if len(entries) > 0 && !entries[cursor].IsDir && filepath.Ext(entries[cursor].Path) == ".md" {
		preview := previewPaneStyle.Render(m.renderPreview(entries[cursor].Path))
		return lipgloss.JoinHorizontal(lipgloss.Top, listing, preview)
	}

	return listing
}

// viewFile renders the active file entry: the editor or markdown preview
// once the buffer is installed, otherwise the load's pending or failed
// state.
func (m Model) viewFile(entry *session.HistoryEntry) string {
	header := titleStyle.Render(filepath.Base(entry.Path))
	mode := "edit"
	if entry.Preview {
		mode = "preview"
	}
	header += helpStyle.Render(fmt.Sprintf("  %s · ctrl+p toggles", mode))

	buf, ok := m.sess.Buffers().Get(entry.Path)
	if !ok {
		state := m.sess.LoadStateFor(entry.Path)
		switch state.Phase {
		case session.LoadFailed:
			return header + "\n\n" + errorStyle.Render(
				fmt.Sprintf("Failed to load file: %v", state.Err))
		default:
			return header + "\n\n" + pendingStyle.Render("Loading…")
		}
	}

	if entry.Preview {
		return header + "\n\n" + renderItems(buf.Items)
	}

	return header + "\n\n" + renderEditor(buf.Content)
}

// renderItems draws the parsed markdown blocks. This consumes the buffer's
// item sequence directly, so what the preview shows is exactly what the
// session recomputed on the last edit.
func renderItems(items []markdown.Item) string {
	var parts []string
	for _, item := range items {
		switch item.Kind {
		case markdown.KindHeading:
			prefix := strings.Repeat("#", item.Level)
			parts = append(parts, headingStyle.Render(prefix+" "+item.Text))
		case markdown.KindParagraph:
			parts = append(parts, item.Text)
		case markdown.KindCodeBlock:
			parts = append(parts, codeStyle.Render(strings.Join(item.Lines, "\n")))
		case markdown.KindList:
			var lines []string
			for i, li := range item.Lines {
				marker := "•"
				if item.Ordered {
					marker = fmt.Sprintf("%d.", i+1)
				}
				lines = append(lines, fmt.Sprintf("%s %s", marker, li))
			}
			parts = append(parts, strings.Join(lines, "\n"))
		case markdown.KindBlockQuote:
			parts = append(parts, quoteStyle.Render("│ "+item.Text))
		case markdown.KindRule:
			parts = append(parts, ruleStyle.Render(strings.Repeat("─", 40)))
		}
	}

	if len(parts) == 0 {
		return pendingStyle.Render("(empty file)")
	}
	return strings.Join(parts, "\n\n")
}

// renderPreview produces the glamour-rendered preview of a listed markdown
// file, preferring the live buffer text over the on-disk bytes and caching
// the result per path.
func (m *Model) renderPreview(path string) string {
	key := pathutil.BufferKey(path)
	if cached, ok := m.previews.Get(key); ok {
		return cached
	}

	var text string
	if buf, ok := m.sess.Buffers().Get(path); ok {
		text = buf.Content.Text()
	} else {
		raw, err := m.handler.ReadFile(path)
		if err != nil {
			return errorStyle.Render("Error reading file")
		}
		text = string(raw)
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.cfg.Theme),
		glamour.WithWordWrap(previewWrapWidth),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	rendered, err := r.Render(text)
	if err != nil {
		return errorStyle.Render("Error rendering markdown")
	}

	m.previews.Put(key, rendered)
	return rendered
}

const previewWrapWidth = 72

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
