package realtime

import (
	"sync"

	"quanngon-be/internal/logger"

	"go.uber.org/zap"
)

// One topic, two event names. Publisher and every subscriber must agree on
// these and on the payload shapes: new-order carries the full order,
// order-status carries {orderId, status}.
const (
	TopicOrders      = "orders"
	EventNewOrder    = "new-order"
	EventOrderStatus = "order-status"
)

type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// Subscriber receives every event published while it is registered.
// There is no replay: consumers fetch current state on mount.
type Subscriber struct {
	ch chan Event
}

func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Hub is the in-process fan-out channel for the orders topic.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan Event, 32)}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Unsubscribe removes the subscriber and closes its channel. Safe to call
// more than once.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.ch)
}

// Publish delivers the event to every current subscriber exactly once.
// A subscriber that cannot keep up loses the event rather than blocking
// the publisher.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case sub.ch <- event:
		default:
			logger.L().Warn("subscriber lagging, dropping event",
				zap.String("event", event.Name),
			)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
