package realtime

import (
	"net/http"
	"strings"

	"quanngon-be/internal/logger"
	"quanngon-be/internal/order"
	"quanngon-be/internal/ordercache"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSHandler bridges hub subscribers onto admin WebSocket connections.
// Each connection is one session: it subscribes on open, mirrors events
// into its own persisted order cache and unsubscribes on teardown.
type WSHandler struct {
	hub      *Hub
	dataDir  string
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *Hub, dataDir, allowedOrigins string) *WSHandler {
	origins := make(map[string]bool)
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = true
		}
	}

	return &WSHandler{
		hub:     hub,
		dataDir: dataDir,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if len(origins) == 0 {
					return true
				}
				return origins[r.Header.Get("Origin")]
			},
		},
	}
}

// Handle serves GET /ws/orders.
func (h *WSHandler) Handle(c *gin.Context) {
	log := logger.FromCtx(c.Request.Context())

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	log = log.With(zap.String("session_id", sessionID))

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	cache := ordercache.New(ordercache.NewFilePersister(h.dataDir, sessionID))

	// Reader only watches for the client going away.
	go func() {
		defer h.hub.Unsubscribe(sub)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	log.Info("admin session subscribed")

	for ev := range sub.Events() {
		h.mirror(cache, ev)

		if err := conn.WriteJSON(ev); err != nil {
			log.Warn("ws write failed, closing session", zap.Error(err))
			break
		}
	}

	log.Info("admin session closed", zap.Int("cached_orders", cache.Len()))
}

// mirror keeps the session's order cache in sync with broadcast events.
func (h *WSHandler) mirror(cache *ordercache.Cache, ev Event) {
	switch ev.Name {
	case EventNewOrder:
		if o, ok := ev.Data.(*order.APIOrder); ok {
			cache.Add(o)
		}
	case EventOrderStatus:
		if su, ok := ev.Data.(order.StatusEvent); ok {
			cache.UpdateStatus(su.OrderID, su.Status)
		}
	}
}
