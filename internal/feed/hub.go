// Package feed streams the simulation to websocket spectators.
package feed

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"go-wall-defense/internal/event"
)

// Message types sent to spectators.
const (
	TypeSnapshot = "snapshot"
	TypeEvent    = "event"
	TypeSummary  = "summary"
)

// Envelope wraps every outgoing message.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// EventMessage is the wire form of a simulation event.
type EventMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans messages out to every connected spectator. A spectator that
// cannot keep up misses messages instead of slowing the simulation down.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	buffer   int
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		buffer: 64,
	}
}

// Handler upgrades the request and keeps the spectator registered until
// its connection drops.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
			return
		}
		c := &client{conn: conn, send: make(chan []byte, h.buffer)}
		h.register(c)
		go c.writer()

		// spectators never talk back; reading only detects the close
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		h.unregister(c)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	slog.Info("spectator joined", "remote", c.conn.RemoteAddr().String(), "spectators", n)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	slog.Info("spectator left", "spectators", n)
}

func (c *client) writer() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends one message to every spectator.
func (h *Hub) Broadcast(typ string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", typ, err)
	}
	out, err := json.Marshal(Envelope{Type: typ, Data: data})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- out:
		default:
		}
	}
	return nil
}

// OnEvent forwards simulation events to spectators.
func (h *Hub) OnEvent(e event.Event) {
	msg := EventMessage{Event: string(e.Type), Data: e.Data}
	if fault, ok := e.Data.(event.FaultData); ok {
		msg.Data = fault.WeaponID
		msg.Error = fault.Err.Error()
	}
	if err := h.Broadcast(TypeEvent, msg); err != nil {
		slog.Warn("event not forwarded", "event", e.Type, "err", err)
	}
}

// Close disconnects every spectator.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
