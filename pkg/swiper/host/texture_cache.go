package host

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 16

type texture interface {
	Destroy() error
}

// TextureCache keeps the most recently used textures, destroying the
// oldest when full. Label and icon textures are re-rendered only when the
// locale, the text or the size changes.
type TextureCache struct {
	textures map[string]texture
	order    []string // insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	t, ok := c.lookup(key)
	if !ok {
		return nil
	}
	tex, _ := t.(*sdl.Texture)
	return tex
}

func (c *TextureCache) lookup(key string) (texture, bool) {
	t, exists := c.textures[key]
	if exists {
		c.moveToEnd(key)
	}
	return t, exists
}

func (c *TextureCache) Set(key string, t *sdl.Texture) {
	c.set(key, t)
}

func (c *TextureCache) set(key string, t texture) {
	if old, exists := c.textures[key]; exists {
		if old != t {
			old.Destroy()
		}
		c.textures[key] = t
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = t
	c.order = append(c.order, key)
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, exists := c.textures[oldest]; exists {
		t.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, t := range c.textures {
		t.Destroy()
	}
	c.textures = make(map[string]texture)
	c.order = c.order[:0]
}
