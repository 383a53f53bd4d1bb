package markdown

import (
	"reflect"
	"testing"
)

func TestParseExtractsBlocksInOrder(t *testing.T) {
	t.Parallel()

	src := "# Title\n\nSome paragraph text.\n\n```go\nfmt.Println(\"hi\")\n```\n\n- one\n- two\n\n> quoted\n\n---\n"

	items := Parse(src)

	want := []Item{
		{Kind: KindHeading, Level: 1, Text: "Title"},
		{Kind: KindParagraph, Text: "Some paragraph text."},
		{Kind: KindCodeBlock, Language: "go", Lines: []string{`fmt.Println("hi")`}},
		{Kind: KindList, Lines: []string{"one", "two"}},
		{Kind: KindBlockQuote, Text: "quoted"},
		{Kind: KindRule},
	}

	if !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected items:\n got: %#v\nwant: %#v", items, want)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	src := "## Heading\n\n1. first\n2. second\n"

	first := Parse(src)
	second := Parse(src)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical parses, got %#v and %#v", first, second)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 items, got %d", len(first))
	}
	if !first[1].Ordered {
		t.Fatal("expected ordered list item")
	}
}

func TestParseEmptyTextYieldsNoItems(t *testing.T) {
	t.Parallel()

	if items := Parse(""); len(items) != 0 {
		t.Fatalf("expected no items for empty text, got %d", len(items))
	}
}
