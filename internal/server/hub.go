package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/linkboard/linkboard/internal/logger"
)

// Local preview only, so cross-origin upgrades are acceptable.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// hub tracks live-reload WebSocket clients and broadcasts to them.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	log     logger.Logger
}

func newHub(log logger.Logger) *hub {
	return &hub{
		clients: make(map[*websocket.Conn]bool),
		log:     log,
	}
}

// broadcast sends a message to every connected client, dropping any
// client whose write fails.
func (h *hub) broadcast(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.log.Debugf("dropping live-reload client: %v", err)
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

// serve upgrades the request and keeps the connection registered until
// the browser goes away. Clients never send meaningful messages; the
// read loop only detects disconnects.
func (h *hub) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", logger.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	h.log.Debug("live-reload client connected")

	defer func() {
		h.mu.Lock()
		if _, ok := h.clients[conn]; ok {
			delete(h.clients, conn)
			_ = conn.Close()
		}
		h.mu.Unlock()
		h.log.Debug("live-reload client disconnected")
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
