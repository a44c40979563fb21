package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ketabio/bookserver/cache"
)

const (
	// wsKeepAliveInterval is how often keepalive pings go to connected clients.
	wsKeepAliveInterval = 30 * time.Second
	// wsReadDeadline is the maximum time to wait for a pong before considering
	// the connection dead.
	wsReadDeadline = 90 * time.Second
	// wsWriteTimeout bounds a single event write so one stuck consumer cannot
	// stall the broadcast.
	wsWriteTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	// The route already enforces admin auth via api_key.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventHub fans cache events out to connected operator websockets and tracks
// the connections so they can be closed on shutdown. It satisfies
// cache.EventSink, so the propagator and warmer publish straight into it.
type EventHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	done  chan struct{}
}

func NewEventHub() *EventHub {
	return &EventHub{
		conns: make(map[*websocket.Conn]struct{}),
		done:  make(chan struct{}),
	}
}

// Publish broadcasts one cache event to every connected client. Slow or dead
// connections are dropped; event delivery is best effort.
func (h *EventHub) Publish(ev cache.Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		slog.Error("events: marshal", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Debug("events: dropping slow client", "error", err)
			delete(h.conns, conn)
			_ = conn.Close()
		}
	}
}

func (h *EventHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *EventHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

// ping writes a keepalive ping under the hub lock, sharing the single-writer
// discipline with Publish.
func (h *EventHub) ping(conn *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteMessage(websocket.PingMessage, nil)
}

// Shutdown closes all active connections and signals handlers to exit.
func (h *EventHub) Shutdown() {
	close(h.done)
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second),
		)
		_ = conn.Close()
	}
	h.conns = make(map[*websocket.Conn]struct{})
}

// EventStreamHandler returns the gin handler for GET /admin/cache/events. A
// connected client receives every invalidation and warmup event as a JSON
// text message.
func EventStreamHandler(hub *EventHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		hub.add(conn)
		defer func() {
			hub.remove(conn)
			_ = conn.Close()
		}()

		ticker := time.NewTicker(wsKeepAliveInterval)
		defer ticker.Stop()

		_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
			return nil
		})

		readErr := make(chan error, 1)
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					readErr <- err
					return
				}
			}
		}()

		for {
			select {
			case <-hub.done:
				return
			case <-ticker.C:
				if err := hub.ping(conn); err != nil {
					return
				}
			case err := <-readErr:
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure,
					websocket.CloseNoStatusReceived,
				) {
					slog.Debug("events: unexpected close", "error", err)
				}
				return
			}
		}
	}
}
