package ordercache

import (
	"sync"

	"quanngon-be/internal/logger"
	"quanngon-be/internal/order"

	"go.uber.org/zap"
)

// Persister serializes the cache contents on every change. Persistence is
// an explicit side effect, injected rather than implicit.
type Persister interface {
	Save(orders []*order.APIOrder) error
}

// Cache is a session-scoped, read-optimized mirror of the orders relevant
// to one client. It is not a source of truth; it is kept consistent via
// the realtime channel and explicit re-fetches.
type Cache struct {
	mu      sync.Mutex
	orders  []*order.APIOrder
	persist Persister
}

func New(persist Persister) *Cache {
	return &Cache{persist: persist}
}

// Add prepends, newest first.
func (c *Cache) Add(o *order.APIOrder) {
	if o == nil {
		return
	}

	c.mu.Lock()
	c.orders = append([]*order.APIOrder{o}, c.orders...)
	c.flushLocked()
	c.mu.Unlock()
}

func (c *Cache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, o := range c.orders {
		if o.ID == id {
			c.orders = append(c.orders[:i], c.orders[i+1:]...)
			c.flushLocked()
			return
		}
	}
}

// UpdateStatus replaces the status of the matching entry. A miss is a
// no-op, not an error: the status event may arrive for an order this
// session never saw.
func (c *Cache) UpdateStatus(id string, status order.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, o := range c.orders {
		if o.ID == id {
			o.Status = status
			c.flushLocked()
			return
		}
	}
}

// Orders returns a snapshot copy.
func (c *Cache) Orders() []*order.APIOrder {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*order.APIOrder, len(c.orders))
	copy(out, c.orders)
	return out
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.orders)
}

func (c *Cache) flushLocked() {
	if c.persist == nil {
		return
	}
	if err := c.persist.Save(c.orders); err != nil {
		logger.L().Warn("failed to persist order cache", zap.Error(err))
	}
}
