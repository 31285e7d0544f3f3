package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func recvMessage(t *testing.T, conn *Connection) *Message {
	t.Helper()
	select {
	case data, ok := <-conn.Send:
		if !ok {
			t.Fatal("send channel closed")
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal message: %v", err)
		}
		return &msg
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

func TestHub_SendToSession(t *testing.T) {
	hub := NewHub()
	conn := &Connection{SessionID: "sess-1", Send: make(chan []byte, 4), Hub: hub}
	other := &Connection{SessionID: "sess-2", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(conn)
	hub.Register(other)

	hub.SendToSession("sess-1", "feedback_fragment", map[string]string{"text": "第一段"})

	msg := recvMessage(t, conn)
	if msg.Type != MsgFeedbackFragment {
		t.Errorf("Type = %q, want %q", msg.Type, MsgFeedbackFragment)
	}
	var payload map[string]string
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload["text"] != "第一段" {
		t.Errorf("payload text = %q, want 第一段", payload["text"])
	}

	select {
	case data := <-other.Send:
		t.Fatalf("message leaked to another session: %s", data)
	default:
	}
}

func TestHub_FragmentOrder(t *testing.T) {
	hub := NewHub()
	conn := &Connection{SessionID: "sess-1", Send: make(chan []byte, 8), Hub: hub}
	hub.Register(conn)

	fragments := []string{"第一段", "第二段", "第三段"}
	for _, text := range fragments {
		hub.SendToSession("sess-1", "feedback_fragment", map[string]string{"text": text})
	}

	for i, want := range fragments {
		msg := recvMessage(t, conn)
		var payload map[string]string
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if payload["text"] != want {
			t.Fatalf("fragment[%d] = %q, want %q", i, payload["text"], want)
		}
	}
}

func TestHub_DisconnectSession(t *testing.T) {
	hub := NewHub()
	first := &Connection{SessionID: "sess-1", Send: make(chan []byte, 4), Hub: hub}
	second := &Connection{SessionID: "sess-1", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(first)
	hub.Register(second)

	hub.DisconnectSession("sess-1")

	for _, conn := range []*Connection{first, second} {
		select {
		case _, ok := <-conn.Send:
			if ok {
				t.Fatal("expected closed send channel")
			}
		case <-time.After(time.Second):
			t.Fatal("send channel not closed")
		}
	}

	// A connection torn down by DisconnectSession may still unregister
	// itself from its read pump; that must stay a no-op
	hub.Unregister(first)

	replacement := &Connection{SessionID: "sess-1", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(replacement)
	hub.SendToSession("sess-1", "feedback_fragment", map[string]string{"text": "重連"})
	recvMessage(t, replacement)
}
