package fzf

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Paintersrp/weblib/internal/handler"
	"github.com/Paintersrp/weblib/internal/pathutil"
)

// ErrNoSelection is returned when the user aborts the finder without
// choosing a note.
var ErrNoSelection = errors.New("no file selected")

// FuzzyFinder selects a markdown file from the vault with a rendered
// preview beside the candidate list.
type FuzzyFinder struct {
	handler  *handler.FileHandler
	vaultDir string
	theme    string
	Header   string
	files    []string
}

func NewFuzzyFinder(vaultDir, theme, header string) *FuzzyFinder {
	return &FuzzyFinder{
		handler:  handler.NewFileHandler(vaultDir),
		vaultDir: vaultDir,
		theme:    theme,
		Header:   header,
	}
}

func (f *FuzzyFinder) Run() (string, error) {
	return f.find("")
}

func (f *FuzzyFinder) RunWithQuery(query string) (string, error) {
	return f.find(query)
}

func (f *FuzzyFinder) find(query string) (string, error) {
	files, err := f.handler.WalkFiles()
	if err != nil {
		return "", fmt.Errorf("error listing files: %w", err)
	}
	f.files = files

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.files, func(i int) string {
		rel, relErr := pathutil.VaultRelative(f.vaultDir, f.files[i])
		if relErr != nil {
			return f.files[i]
		}
		return rel
	}, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrNoSelection
		}
		return "", err
	}

	return f.files[idx], nil
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	content, err := f.handler.ReadFile(f.files[i])
	if err != nil {
		return "Error reading file"
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(f.theme),
		glamour.WithWordWrap(previewWidth(w)),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	rendered, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}

	return rendered
}

// previewWidth picks a wrap width for the preview pane: the finder's pane
// width when it reports one, otherwise half the terminal, otherwise a
// sensible default.
func previewWidth(paneWidth int) int {
	if paneWidth > 2 {
		return paneWidth - 2
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 4 {
		return w / 2
	}
	return 100
}
