package httpx

import (
	"encoding/json"
	"sync"
)

// MessageType names the kind of a WebSocket message.
type MessageType string

const (
	MessageTypeMove  MessageType = "move"
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// Message is the envelope for every WebSocket message.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// newMessage marshals payload into a message of type t.
func newMessage(t MessageType, payload interface{}) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: data}, nil
}

// jsonWriter is the part of a WebSocket connection the hub writes to.
type jsonWriter interface {
	WriteJSON(v interface{}) error
}

// Hub tracks the connections watching each game. Writes to a connection are
// serialised by the hub's lock.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[jsonWriter]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[jsonWriter]struct{})}
}

// Subscribe registers conn for updates to game id.
func (h *Hub) Subscribe(id string, conn jsonWriter) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.subs[id]
	if !ok {
		conns = make(map[jsonWriter]struct{})
		h.subs[id] = conns
	}
	conns[conn] = struct{}{}
}

// Unsubscribe removes conn from game id.
func (h *Hub) Unsubscribe(id string, conn jsonWriter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(id, conn)
}

func (h *Hub) remove(id string, conn jsonWriter) {
	conns, ok := h.subs[id]
	if !ok {
		return
	}
	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.subs, id)
	}
}

// Drop forgets every connection of game id.
func (h *Hub) Drop(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, id)
}

// Count returns the number of connections watching game id.
func (h *Hub) Count(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[id])
}

// Send writes msg to a single connection.
func (h *Hub) Send(conn jsonWriter, msg Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return conn.WriteJSON(msg)
}

// Broadcast writes msg to every connection of game id. Connections that fail
// are dropped. It returns the number of successful writes.
func (h *Hub) Broadcast(id string, msg Message) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for conn := range h.subs[id] {
		if err := conn.WriteJSON(msg); err != nil {
			h.remove(id, conn)
			continue
		}
		sent++
	}
	return sent
}
