package buffer

import "strings"

// Position addresses a rune boundary in the content: Row is a line index,
// Col a rune offset within that line.
type Position struct {
	Row int
	Col int
}

func (p Position) before(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionLineStart
	MotionLineEnd
	MotionDocStart
	MotionDocEnd
)

// Action is a single editor operation. Insert, Backspace and Delete mutate
// the text; Move, Select and Unselect only move the cursor or selection and
// never count as edits.
type Action interface {
	isAction()
}

type Insert struct{ Text string }

type Backspace struct{}

type Delete struct{}

type Move struct{ Motion Motion }

type Select struct{ From, To Position }

type Unselect struct{}

func (Insert) isAction()    {}
func (Backspace) isAction() {}
func (Delete) isAction()    {}
func (Move) isAction()      {}
func (Select) isAction()    {}
func (Unselect) isAction()  {}

// Content holds the editable text of one buffer as lines of runes plus a
// cursor and an optional selection.
type Content struct {
	lines     [][]rune
	cursor    Position
	selAnchor Position
	selected  bool
}

func NewContent(text string) *Content {
	raw := strings.Split(text, "\n")
	lines := make([][]rune, len(raw))
	for i, l := range raw {
		lines[i] = []rune(l)
	}
	return &Content{lines: lines}
}

// Text joins the lines back into the full buffer text.
func (c *Content) Text() string {
	parts := make([]string, len(c.lines))
	for i, l := range c.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

func (c *Content) Cursor() Position {
	return c.cursor
}

// Selection returns the selected range in document order.
func (c *Content) Selection() (from, to Position, ok bool) {
	if !c.selected {
		return Position{}, Position{}, false
	}
	if c.selAnchor.before(c.cursor) {
		return c.selAnchor, c.cursor, true
	}
	return c.cursor, c.selAnchor, true
}

// Apply performs one action and reports whether the text changed.
func (c *Content) Apply(action Action) bool {
	switch a := action.(type) {
	case Insert:
		c.deleteSelection()
		c.insertText(a.Text)
		return true

	case Backspace:
		if c.deleteSelection() {
			return true
		}
		return c.backspace()

	case Delete:
		if c.deleteSelection() {
			return true
		}
		return c.deleteForward()

	case Move:
		c.selected = false
		c.move(a.Motion)
		return false

	case Select:
		c.selAnchor = c.clamp(a.From)
		c.cursor = c.clamp(a.To)
		c.selected = true
		return false

	case Unselect:
		c.selected = false
		return false
	}

	return false
}

func (c *Content) clamp(p Position) Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= len(c.lines) {
		p.Row = len(c.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col > len(c.lines[p.Row]) {
		p.Col = len(c.lines[p.Row])
	}
	return p
}

func (c *Content) insertText(text string) {
	segments := strings.Split(text, "\n")
	line := c.lines[c.cursor.Row]
	head := append([]rune{}, line[:c.cursor.Col]...)
	tail := append([]rune{}, line[c.cursor.Col:]...)

	if len(segments) == 1 {
		c.lines[c.cursor.Row] = append(append(head, []rune(segments[0])...), tail...)
		c.cursor.Col += len([]rune(segments[0]))
		return
	}

	first := append(head, []rune(segments[0])...)
	last := append([]rune(segments[len(segments)-1]), tail...)

	inserted := make([][]rune, 0, len(segments))
	inserted = append(inserted, first)
	for _, seg := range segments[1 : len(segments)-1] {
		inserted = append(inserted, []rune(seg))
	}
	inserted = append(inserted, last)

	rest := append([][]rune{}, c.lines[c.cursor.Row+1:]...)
	c.lines = append(c.lines[:c.cursor.Row], append(inserted, rest...)...)

	c.cursor.Row += len(segments) - 1
	c.cursor.Col = len([]rune(segments[len(segments)-1]))
}

func (c *Content) backspace() bool {
	switch {
	case c.cursor.Col > 0:
		line := c.lines[c.cursor.Row]
		c.lines[c.cursor.Row] = append(line[:c.cursor.Col-1:c.cursor.Col-1], line[c.cursor.Col:]...)
		c.cursor.Col--
		return true

	case c.cursor.Row > 0:
		prev := c.lines[c.cursor.Row-1]
		c.cursor = Position{Row: c.cursor.Row - 1, Col: len(prev)}
		c.lines[c.cursor.Row] = append(prev, c.lines[c.cursor.Row+1]...)
		c.lines = append(c.lines[:c.cursor.Row+1], c.lines[c.cursor.Row+2:]...)
		return true
	}

	return false
}

func (c *Content) deleteForward() bool {
	line := c.lines[c.cursor.Row]
	switch {
	case c.cursor.Col < len(line):
		c.lines[c.cursor.Row] = append(line[:c.cursor.Col:c.cursor.Col], line[c.cursor.Col+1:]...)
		return true

	case c.cursor.Row < len(c.lines)-1:
		c.lines[c.cursor.Row] = append(line, c.lines[c.cursor.Row+1]...)
		c.lines = append(c.lines[:c.cursor.Row+1], c.lines[c.cursor.Row+2:]...)
		return true
	}

	return false
}

// deleteSelection removes the selected range, if any, leaving the cursor at
// its start.
func (c *Content) deleteSelection() bool {
	from, to, ok := c.Selection()
	if !ok {
		c.selected = false
		return false
	}
	c.selected = false

	if from == to {
		c.cursor = from
		return false
	}

	head := append([]rune{}, c.lines[from.Row][:from.Col]...)
	tail := append([]rune{}, c.lines[to.Row][to.Col:]...)

	joined := append(head, tail...)
	rest := append([][]rune{}, c.lines[to.Row+1:]...)
	c.lines = append(c.lines[:from.Row], append([][]rune{joined}, rest...)...)

	c.cursor = from
	return true
}

func (c *Content) move(m Motion) {
	switch m {
	case MotionLeft:
		if c.cursor.Col > 0 {
			c.cursor.Col--
		} else if c.cursor.Row > 0 {
			c.cursor.Row--
			c.cursor.Col = len(c.lines[c.cursor.Row])
		}
	case MotionRight:
		if c.cursor.Col < len(c.lines[c.cursor.Row]) {
			c.cursor.Col++
		} else if c.cursor.Row < len(c.lines)-1 {
			c.cursor.Row++
			c.cursor.Col = 0
		}
	case MotionUp:
		if c.cursor.Row > 0 {
			c.cursor.Row--
			c.cursor = c.clamp(c.cursor)
		}
	case MotionDown:
		if c.cursor.Row < len(c.lines)-1 {
			c.cursor.Row++
			c.cursor = c.clamp(c.cursor)
		}
	case MotionLineStart:
		c.cursor.Col = 0
	case MotionLineEnd:
		c.cursor.Col = len(c.lines[c.cursor.Row])
	case MotionDocStart:
		c.cursor = Position{}
	case MotionDocEnd:
		c.cursor.Row = len(c.lines) - 1
		c.cursor.Col = len(c.lines[c.cursor.Row])
	}
}
