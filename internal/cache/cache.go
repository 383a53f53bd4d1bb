// Package cache provides a small LRU used for rendered markdown previews.
// Rendering a listing preview with glamour is expensive enough to repeat on
// every cursor move, so the pane keeps the last renders keyed by path.
package cache

import (
	"container/list"
)

type PreviewCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key   string
	value string
}

func NewPreviewCache(size int) *PreviewCache {
	return &PreviewCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

func (c *PreviewCache) Get(key string) (string, bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).value, true
	}
	return "", false
}

func (c *PreviewCache) Put(key, value string) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).value = value
		return
	}

	ele := c.evictList.PushFront(&entry{key, value})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// Invalidate drops a single path, used after a buffer edit so the next
// listing preview re-renders the fresh text.
func (c *PreviewCache) Invalidate(key string) {
	if ele, hit := c.items[key]; hit {
		c.removeElement(ele)
	}
}

func (c *PreviewCache) Len() int {
	return c.evictList.Len()
}

func (c *PreviewCache) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *PreviewCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)
}
