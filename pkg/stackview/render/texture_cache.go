package render

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultTextCacheSize = 64

// textKey identifies one rendering of a string. Wrap is zero for single-line
// text, otherwise the width the lines were broken at.
type textKey struct {
	text string
	wrap int32
}

// textEntry is a rendered string with the size SDL reported when it was
// created, so drawing a cached title never queries the texture.
type textEntry struct {
	key     textKey
	texture *sdl.Texture
	w, h    int32
}

// textCache holds rendered text for the header and content labels. Titles
// repeat every frame while a transition runs, so the most recently drawn
// entries are kept and the oldest is released once the cache is full.
//
// It is used from the render loop only and is not safe for concurrent use.
type textCache struct {
	capacity int
	entries  map[textKey]*list.Element
	order    *list.List // Front = drawn most recently
	release  func(*sdl.Texture)
}

func newTextCache(capacity int) *textCache {
	if capacity <= 0 {
		capacity = defaultTextCacheSize
	}
	return &textCache{
		capacity: capacity,
		entries:  make(map[textKey]*list.Element, capacity),
		order:    list.New(),
		release:  destroyTexture,
	}
}

func destroyTexture(t *sdl.Texture) {
	if t != nil {
		t.Destroy()
	}
}

func (c *textCache) get(key textKey) (textEntry, bool) {
	elem, ok := c.entries[key]
	if !ok {
		return textEntry{}, false
	}
	c.order.MoveToFront(elem)
	return *elem.Value.(*textEntry), true
}

// put stores a rendering of key. A texture already stored under key is
// released unless it is the same one.
func (c *textCache) put(key textKey, texture *sdl.Texture, w, h int32) {
	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*textEntry)
		if entry.texture != texture {
			c.release(entry.texture)
		}
		entry.texture, entry.w, entry.h = texture, w, h
		c.order.MoveToFront(elem)
		return
	}

	for c.order.Len() >= c.capacity {
		c.evict(c.order.Back())
	}
	c.entries[key] = c.order.PushFront(&textEntry{key: key, texture: texture, w: w, h: h})
}

func (c *textCache) evict(elem *list.Element) {
	entry := c.order.Remove(elem).(*textEntry)
	delete(c.entries, entry.key)
	c.release(entry.texture)
}

func (c *textCache) len() int {
	return c.order.Len()
}

// clear releases every texture.
func (c *textCache) clear() {
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		c.release(elem.Value.(*textEntry).texture)
	}
	c.entries = make(map[textKey]*list.Element, c.capacity)
	c.order.Init()
}
