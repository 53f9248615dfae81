package operations

import (
	"container/list"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/agbru/bigcalc/internal/bigint"
)

// memoCache is a bounded LRU of pure operation outputs keyed by the xxhash
// of the canonical expression. The full expression is stored alongside each
// entry so a hash collision degrades to a miss.
type memoCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[uint64]*list.Element
}

type memoEntry struct {
	hash uint64
	expr string
	out  Output
}

func newMemoCache(capacity int) *memoCache {
	if capacity <= 0 {
		return nil
	}
	return &memoCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[uint64]*list.Element, capacity),
	}
}

func (c *memoCache) get(expr string) (Output, bool) {
	h := xxhash.Sum64String(expr)

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[h]
	if !ok {
		return Output{}, false
	}
	e := el.Value.(*memoEntry)
	if e.expr != expr {
		return Output{}, false
	}
	c.order.MoveToFront(el)
	return e.out.clone(), true
}

func (c *memoCache) put(expr string, out Output) {
	h := xxhash.Sum64String(expr)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[h]; ok {
		el.Value = &memoEntry{hash: h, expr: expr, out: out.clone()}
		c.order.MoveToFront(el)
		return
	}
	c.entries[h] = c.order.PushFront(&memoEntry{hash: h, expr: expr, out: out.clone()})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*memoEntry).hash)
	}
}

func (c *memoCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (o Output) clone() Output {
	if o.Values != nil {
		o.Values = append([]bigint.Int(nil), o.Values...)
	}
	return o
}
