package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"quanngon-be/internal/order"
	"quanngon-be/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type chanNotifier struct {
	sent chan string
	err  error
}

func (n *chanNotifier) Send(_ context.Context, _, _, text string) error {
	n.sent <- text
	return n.err
}

type staticCredentials struct {
	token  string
	chatID string
	err    error
}

func (c *staticCredentials) TelegramTarget(context.Context) (string, string, error) {
	return c.token, c.chatID, c.err
}

func waitForText(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case text := <-ch:
		return text
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for chat message")
		return ""
	}
}

func TestDispatcher_OrderCreated(t *testing.T) {
	hub := realtime.NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	notifier := &chanNotifier{sent: make(chan string, 1)}
	d := NewDispatcher(hub, notifier, &staticCredentials{token: "tok", chatID: "chat"})

	o := &order.Order{
		ID:        primitive.NewObjectID(),
		TypeOrder: order.TypeDineIn,
		Status:    order.StatusPending,
		Items:     []order.Item{{Name: "Phở bò", Quantity: 1, Price: 60000}},
	}
	d.OrderCreated(context.Background(), o)

	// Broadcast carries the full order.
	ev := <-sub.Events()
	require.Equal(t, realtime.EventNewOrder, ev.Name)
	payload, ok := ev.Data.(*order.APIOrder)
	require.True(t, ok)
	assert.Equal(t, o.ID.Hex(), payload.ID)

	text := waitForText(t, notifier.sent)
	assert.Contains(t, text, "Phở bò")
}

func TestDispatcher_StatusChanged(t *testing.T) {
	hub := realtime.NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	notifier := &chanNotifier{sent: make(chan string, 1)}
	d := NewDispatcher(hub, notifier, &staticCredentials{token: "tok", chatID: "chat"})

	d.StatusChanged(context.Background(), "abc123", order.StatusCompleted)

	ev := <-sub.Events()
	require.Equal(t, realtime.EventOrderStatus, ev.Name)
	payload, ok := ev.Data.(order.StatusEvent)
	require.True(t, ok)
	assert.Equal(t, "abc123", payload.OrderID)
	assert.Equal(t, order.StatusCompleted, payload.Status)

	waitForText(t, notifier.sent)
}

func TestDispatcher_ChatFailureIsSwallowed(t *testing.T) {
	hub := realtime.NewHub()
	notifier := &chanNotifier{sent: make(chan string, 1), err: errors.New("bot unreachable")}
	d := NewDispatcher(hub, notifier, &staticCredentials{token: "tok", chatID: "chat"})

	// Must not panic or propagate anywhere.
	assert.NotPanics(t, func() {
		d.StatusChanged(context.Background(), "abc123", order.StatusPaid)
		waitForText(t, notifier.sent)
	})
}

func TestDispatcher_SkipsChatWhenUnconfigured(t *testing.T) {
	hub := realtime.NewHub()
	notifier := &chanNotifier{sent: make(chan string, 1)}
	d := NewDispatcher(hub, notifier, &staticCredentials{})

	d.StatusChanged(context.Background(), "abc123", order.StatusCompleted)

	select {
	case text := <-notifier.sent:
		t.Fatalf("unexpected chat message sent: %q", text)
	case <-time.After(100 * time.Millisecond):
	}
}
