// Package markdown turns raw note text into an ordered sequence of render
// items. Parsing is pure: the same text always yields the same items, so the
// session engine can recompute them after every mutating edit.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindCodeBlock
	KindList
	KindBlockQuote
	KindRule
)

// Item is one top-level markdown block in document order.
type Item struct {
	Kind     Kind
	Level    int      // headings only
	Text     string   // heading, paragraph, quote
	Language string   // fenced code blocks
	Lines    []string // code block lines or list item texts
	Ordered  bool     // lists only
}

// Parse extracts the top-level blocks of src. Unknown or empty blocks are
// skipped rather than surfaced as errors; a file of unparseable bytes simply
// renders as fewer items.
func Parse(src string) []Item {
	source := []byte(src)
	parser := goldmark.DefaultParser()
	document := parser.Parse(text.NewReader(source))

	var items []Item
	for n := document.FirstChild(); n != nil; n = n.NextSibling() {
		if item, ok := itemFromNode(n, source); ok {
			items = append(items, item)
		}
	}

	return items
}

func itemFromNode(n ast.Node, source []byte) (Item, bool) {
	switch n := n.(type) {
	case *ast.Heading:
		return Item{
			Kind:  KindHeading,
			Level: n.Level,
			Text:  string(n.Text(source)),
		}, true

	case *ast.Paragraph, *ast.TextBlock:
		return Item{
			Kind: KindParagraph,
			Text: string(n.Text(source)),
		}, true

	case *ast.FencedCodeBlock:
		return Item{
			Kind:     KindCodeBlock,
			Language: string(n.Language(source)),
			Lines:    segmentLines(n, source),
		}, true

	case *ast.CodeBlock:
		return Item{
			Kind:  KindCodeBlock,
			Lines: segmentLines(n, source),
		}, true

	case *ast.List:
		var lines []string
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			lines = append(lines, string(item.Text(source)))
		}
		return Item{
			Kind:    KindList,
			Ordered: n.IsOrdered(),
			Lines:   lines,
		}, true

	case *ast.Blockquote:
		return Item{
			Kind: KindBlockQuote,
			Text: string(n.Text(source)),
		}, true

	case *ast.ThematicBreak:
		return Item{Kind: KindRule}, true
	}

	return Item{}, false
}

func segmentLines(n ast.Node, source []byte) []string {
	var lines []string
	segments := n.Lines()
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		lines = append(lines, strings.TrimRight(string(seg.Value(source)), "\n"))
	}
	return lines
}
