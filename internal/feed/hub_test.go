package feed

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"go-wall-defense/internal/event"
)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	waitFor(t, func() bool { return h.Clients() == 1 })
	return conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("bad envelope %s: %v", payload, err)
	}
	return env
}

func TestBroadcastReachesSpectator(t *testing.T) {
	h := NewHub()
	conn := dial(t, h)

	if err := h.Broadcast(TypeSnapshot, map[string]int{"day": 4}); err != nil {
		t.Fatal(err)
	}
	env := readEnvelope(t, conn)
	if env.Type != TypeSnapshot {
		t.Errorf("type = %q", env.Type)
	}
	var data map[string]int
	if err := json.Unmarshal(env.Data, &data); err != nil || data["day"] != 4 {
		t.Errorf("data = %s (%v)", env.Data, err)
	}
}

func TestEventsAreForwarded(t *testing.T) {
	h := NewHub()
	conn := dial(t, h)

	h.OnEvent(event.Event{Type: event.WeaponFault, Data: event.FaultData{WeaponID: 3, Err: errors.New("jammed")}})

	env := readEnvelope(t, conn)
	if env.Type != TypeEvent {
		t.Fatalf("type = %q", env.Type)
	}
	var msg struct {
		Event string `json:"event"`
		Data  int    `json:"data"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(env.Data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Event != string(event.WeaponFault) || msg.Data != 3 || msg.Error != "jammed" {
		t.Errorf("forwarded %+v", msg)
	}
}

func TestSpectatorLeaves(t *testing.T) {
	h := NewHub()
	conn := dial(t, h)

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	waitFor(t, func() bool { return h.Clients() == 0 })

	if err := h.Broadcast(TypeSummary, "nobody listens"); err != nil {
		t.Errorf("broadcast with no spectators: %v", err)
	}
}

func TestBroadcastRejectsUnmarshalable(t *testing.T) {
	h := NewHub()
	if err := h.Broadcast(TypeSnapshot, make(chan int)); err == nil {
		t.Error("expected a marshal error")
	}
}
