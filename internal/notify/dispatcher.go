package notify

import (
	"context"
	"time"

	"quanngon-be/internal/logger"
	"quanngon-be/internal/order"
	"quanngon-be/internal/realtime"

	"go.uber.org/zap"
)

// CredentialSource resolves the bot credentials at send time, so staff can
// rotate the token without a restart.
type CredentialSource interface {
	TelegramTarget(ctx context.Context) (token, chatID string, err error)
}

// Dispatcher implements order.Dispatcher. Both channels are best-effort:
// a failed broadcast or chat message is logged and swallowed, it never
// fails the persisted order. The chat call runs detached with its own
// timeout so a hung bot API cannot block order placement.
type Dispatcher struct {
	hub         *realtime.Hub
	notifier    Notifier
	credentials CredentialSource
	sendTimeout time.Duration
}

func NewDispatcher(hub *realtime.Hub, notifier Notifier, credentials CredentialSource) *Dispatcher {
	return &Dispatcher{
		hub:         hub,
		notifier:    notifier,
		credentials: credentials,
		sendTimeout: 10 * time.Second,
	}
}

func (d *Dispatcher) OrderCreated(ctx context.Context, o *order.Order) {
	d.hub.Publish(realtime.Event{
		Name: realtime.EventNewOrder,
		Data: order.ToAPIOrder(o),
	})

	logger.FromCtx(ctx).Debug("new-order event published",
		zap.String("order_id", o.ID.Hex()),
		zap.Int("subscribers", d.hub.SubscriberCount()),
	)

	go d.sendChatMessage(BuildOrderMessage(o))
}

func (d *Dispatcher) StatusChanged(ctx context.Context, orderID string, status order.Status) {
	d.hub.Publish(realtime.Event{
		Name: realtime.EventOrderStatus,
		Data: order.StatusEvent{OrderID: orderID, Status: status},
	})

	logger.FromCtx(ctx).Debug("order-status event published",
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)

	go d.sendChatMessage(BuildStatusMessage(orderID, status))
}

func (d *Dispatcher) sendChatMessage(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	token, chatID, err := d.credentials.TelegramTarget(ctx)
	if err != nil {
		logger.L().Warn("failed to load telegram credentials", zap.Error(err))
		return
	}
	if token == "" || chatID == "" {
		logger.L().Debug("telegram notification disabled, skipping")
		return
	}

	if err := d.notifier.Send(ctx, token, chatID, text); err != nil {
		logger.L().Warn("telegram notification failed", zap.Error(err))
	}
}
