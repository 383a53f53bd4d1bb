// Package buffer holds the in-memory contents of open files. Buffers are
// shared across tabs by path: every tab viewing the same file edits the same
// Content and sees the same parsed markdown items.
package buffer

import (
	"errors"
	"fmt"

	"github.com/Paintersrp/weblib/internal/markdown"
	"github.com/Paintersrp/weblib/internal/pathutil"
)

var ErrNoBuffer = errors.New("no buffer installed for path")

// Writer persists buffer text back to disk. Satisfied by handler.FileHandler.
type Writer interface {
	WriteFile(path string, data []byte) error
}

// Buffer is the loaded, possibly edited state of one file.
type Buffer struct {
	Content *Content
	Items   []markdown.Item
}

// Cache maps normalized absolute paths to buffers. It survives tab closure;
// nothing is evicted while the session lives.
type Cache struct {
	writer  Writer
	buffers map[string]*Buffer
}

func NewCache(w Writer) *Cache {
	return &Cache{
		writer:  w,
		buffers: make(map[string]*Buffer),
	}
}

func (c *Cache) Contains(path string) bool {
	_, ok := c.buffers[pathutil.BufferKey(path)]
	return ok
}

func (c *Cache) Get(path string) (*Buffer, bool) {
	b, ok := c.buffers[pathutil.BufferKey(path)]
	return b, ok
}

func (c *Cache) Len() int {
	return len(c.buffers)
}

// Install creates the buffer for path from raw file text, parsing its
// markdown items once. A second install for the same path overwrites the
// first: concurrent loads are not deduplicated, the last installer wins.
func (c *Cache) Install(path, raw string) *Buffer {
	b := &Buffer{
		Content: NewContent(raw),
		Items:   markdown.Parse(raw),
	}
	c.buffers[pathutil.BufferKey(path)] = b
	return b
}

// Apply performs one editor action on the buffer for path. When the action
// mutated the text, the markdown items are reparsed and the full text is
// written through to disk. A failed write keeps the in-memory edit and is
// reported to the caller; it is not retried.
func (c *Cache) Apply(path string, action Action) (bool, error) {
	key := pathutil.BufferKey(path)
	b, ok := c.buffers[key]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNoBuffer, path)
	}

	if !b.Content.Apply(action) {
		return false, nil
	}

	text := b.Content.Text()
	b.Items = markdown.Parse(text)

	if err := c.writer.WriteFile(key, []byte(text)); err != nil {
		return true, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, nil
}
