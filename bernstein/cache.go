package bernstein

import (
	"container/list"
)

// lruCache is a bounded map evicting its least recently used entry.
// It is not safe for concurrent use, callers hold the lock of the [Transformer].
type lruCache[K comparable, V any] struct {
	capacity int
	entries  map[K]*list.Element
	lru      *list.List

	hits      int
	misses    int
	evictions int
}

type lruEntry[K comparable, V any] struct {
	key K
	val V
}

// newLRUCache returns an empty cache holding at most max(capacity, 1) entries.
func newLRUCache[K comparable, V any](capacity int) *lruCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &lruCache[K, V]{
		capacity: capacity,
		entries:  make(map[K]*list.Element),
		lru:      list.New(),
	}
}

func (c *lruCache[K, V]) get(key K) (val V, ok bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return
	}
	c.hits++
	c.lru.MoveToFront(e)
	return e.Value.(*lruEntry[K, V]).val, true
}

func (c *lruCache[K, V]) put(key K, val V) {

	if e, ok := c.entries[key]; ok {
		e.Value.(*lruEntry[K, V]).val = val
		c.lru.MoveToFront(e)
		return
	}

	for c.lru.Len() >= c.capacity {
		back := c.lru.Back()
		delete(c.entries, back.Value.(*lruEntry[K, V]).key)
		c.lru.Remove(back)
		c.evictions++
	}

	c.entries[key] = c.lru.PushFront(&lruEntry[K, V]{key: key, val: val})
}

func (c *lruCache[K, V]) len() int {
	return c.lru.Len()
}

func (c *lruCache[K, V]) clear() {
	c.entries = make(map[K]*list.Element)
	c.lru.Init()
}
