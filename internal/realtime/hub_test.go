package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveOne(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "channel closed unexpectedly")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_FanOut(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()
	defer hub.Unsubscribe(a)
	defer hub.Unsubscribe(b)

	payload := map[string]string{"orderId": "abc123"}
	hub.Publish(Event{Name: EventNewOrder, Data: payload})

	evA := receiveOne(t, a)
	evB := receiveOne(t, b)

	// Both subscribers get the identical payload exactly once.
	assert.Equal(t, EventNewOrder, evA.Name)
	assert.Equal(t, evA, evB)

	select {
	case ev := <-a.Events():
		t.Fatalf("unexpected second event: %+v", ev)
	default:
	}
}

func TestHub_UnsubscribeIdempotent(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)
	assert.NotPanics(t, func() { hub.Unsubscribe(sub) })
	assert.Equal(t, 0, hub.SubscriberCount())

	// Unsubscribed consumers see a closed channel, not stale events.
	hub.Publish(Event{Name: EventOrderStatus})
	_, ok := <-sub.Events()
	assert.False(t, ok)
}

func TestHub_NoReplayForLateSubscriber(t *testing.T) {
	hub := NewHub()
	hub.Publish(Event{Name: EventNewOrder})

	late := hub.Subscribe()
	defer hub.Unsubscribe(late)

	select {
	case ev := <-late.Events():
		t.Fatalf("late subscriber should not see past events, got %+v", ev)
	default:
	}
}

func TestHub_SlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	hub := NewHub()
	slow := hub.Subscribe()
	defer hub.Unsubscribe(slow)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(Event{Name: EventOrderStatus, Data: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked by slow subscriber")
	}
}
