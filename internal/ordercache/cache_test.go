package ordercache

import (
	"path/filepath"
	"testing"

	"quanngon-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersister struct {
	saves int
	last  []*order.APIOrder
}

func (p *recordingPersister) Save(orders []*order.APIOrder) error {
	p.saves++
	p.last = orders
	return nil
}

func apiOrder(id string) *order.APIOrder {
	return &order.APIOrder{ID: id, Status: order.StatusPending}
}

func TestCache_AddPrepends(t *testing.T) {
	p := &recordingPersister{}
	c := New(p)

	c.Add(apiOrder("first"))
	c.Add(apiOrder("second"))

	orders := c.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "second", orders[0].ID)
	assert.Equal(t, "first", orders[1].ID)
	assert.Equal(t, 2, p.saves)
}

func TestCache_UpdateStatus(t *testing.T) {
	p := &recordingPersister{}
	c := New(p)
	c.Add(apiOrder("abc"))

	t.Run("Match", func(t *testing.T) {
		c.UpdateStatus("abc", order.StatusCompleted)
		assert.Equal(t, order.StatusCompleted, c.Orders()[0].Status)
	})

	t.Run("MissIsNoOp", func(t *testing.T) {
		before := p.saves
		c.UpdateStatus("missing", order.StatusPaid)

		assert.Equal(t, order.StatusCompleted, c.Orders()[0].Status)
		assert.Equal(t, before, p.saves, "a miss must not trigger persistence")
	})
}

func TestCache_Remove(t *testing.T) {
	c := New(nil)
	c.Add(apiOrder("a"))
	c.Add(apiOrder("b"))

	c.Remove("a")
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "b", c.Orders()[0].ID)

	// Removing an unknown id changes nothing.
	c.Remove("ghost")
	assert.Equal(t, 1, c.Len())
}

func TestFilePersister_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := NewFilePersister(dir, "session-1")

	orders := []*order.APIOrder{apiOrder("x"), apiOrder("y")}
	require.NoError(t, p.Save(orders))

	loaded, err := p.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "x", loaded[0].ID)

	// A fresh session has nothing persisted yet.
	empty, err := NewFilePersister(filepath.Join(dir, "nested"), "session-2").Load()
	require.NoError(t, err)
	assert.Nil(t, empty)
}
