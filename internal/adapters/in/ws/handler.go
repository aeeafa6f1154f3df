// Package ws upgrades HTTP connections and streams lifecycle events to them.
//
// Each connection gets its own bus subscription. The write pump is the only
// goroutine writing to the socket; the read pump exists to detect disconnects
// and keep pong handling alive. Incoming frames are ignored: the push channel
// is one-way, clients act through the REST API.
package ws

import (
	"net/http"
	"time"

	"dispatch/internal/adapters/out/eventbus"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	// pingInterval is how often the server pings the client.
	pingInterval = 30 * time.Second

	// pongWait is how long the client has to answer a ping before the
	// connection is considered dead.
	pongWait = 60 * time.Second

	// writeWait bounds a single frame write.
	writeWait = 10 * time.Second

	// maxMessageSize caps inbound frames; clients are not expected to
	// send anything beyond control frames.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard may be served from any origin, mirroring the
	// gateway's open CORS policy.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler serves the event stream endpoint.
type Handler struct {
	bus *eventbus.Bus
	log *zap.SugaredLogger
}

// NewHandler creates a websocket handler fed by the given bus.
func NewHandler(bus *eventbus.Bus, log *zap.SugaredLogger) *Handler {
	return &Handler{
		bus: bus,
		log: log,
	}
}

// Serve upgrades the request and streams events until the client goes away
// or falls too far behind.
func (h *Handler) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "remote", c.RealIP(), "error", err)
		return nil // Upgrade already wrote the HTTP error
	}

	sub := h.bus.Subscribe()
	h.log.Infow("websocket client connected", "remote", c.RealIP(), "subscriber", sub.ID)

	go h.writePump(conn, sub)
	go h.readPump(conn, sub.ID)

	return nil
}

// writePump owns all writes on the connection: event frames and pings.
// It exits when the subscription channel closes or a write fails.
func (h *Handler) writePump(conn *websocket.Conn, sub *eventbus.Subscription) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		h.bus.Unsubscribe(sub.ID)
		_ = conn.Close()
	}()

	for {
		select {
		case payload, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// dropped by the bus as too slow
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "event backlog"))
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection so control frames are processed, and tears
// the subscription down when the client disconnects.
func (h *Handler) readPump(conn *websocket.Conn, subID uint64) {
	defer func() {
		h.bus.Unsubscribe(subID)
		_ = conn.Close()
		h.log.Infow("websocket client disconnected", "subscriber", subID)
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debugw("websocket read ended", "subscriber", subID, "error", err)
			}
			return
		}
	}
}
