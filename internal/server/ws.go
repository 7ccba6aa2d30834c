package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ayusman/handspell/internal/app"
	"github.com/ayusman/handspell/internal/landmark"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// stateMessage is one WebSocket broadcast: the display state plus the
// smoothed landmark set for client-side overlays.
type stateMessage struct {
	app.State
	Landmarks landmark.Set `json:"landmarks"`
}

// StateHandler broadcasts the session state and smoothed landmarks to
// connected WebSocket clients.
type StateHandler struct {
	session *app.Session
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewStateHandler creates a StateHandler broadcasting session.
func NewStateHandler(session *app.Session) *StateHandler {
	h := &StateHandler{
		session: session,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends the session state to all connected clients at ~15 FPS.
func (h *StateHandler) broadcast() {
	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for range ticker.C {
		h.mu.RLock()
		if len(h.clients) == 0 {
			h.mu.RUnlock()
			continue
		}

		msg := stateMessage{
			State:     h.session.Snapshot(),
			Landmarks: h.session.LastSmoothed(),
		}

		var dead []*websocket.Conn
		for conn := range h.clients {
			if err := conn.WriteJSON(msg); err != nil {
				dead = append(dead, conn)
			}
		}
		h.mu.RUnlock()

		if len(dead) > 0 {
			h.mu.Lock()
			for _, conn := range dead {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()
		}
	}
}
