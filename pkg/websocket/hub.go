package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Envelope is the JSON frame sent to every websocket client.
type Envelope struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

// Encode marshals an envelope stamped with the current time.
func Encode(typ string, payload any) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:      typ,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Hub fans guild events out to the websocket clients subscribed to each room.
// All room state is owned by the Run goroutine.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	done       chan struct{}
	stopOnce   sync.Once

	rooms map[string]map[*Client]bool
}

type message struct {
	room string
	data []byte
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 256),
		done:       make(chan struct{}),
		rooms:      map[string]map[*Client]bool{},
	}
}

// Run processes hub events until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			for room, clients := range h.rooms {
				for c := range clients {
					c.closeSend()
				}
				delete(h.rooms, room)
			}
			return
		case c := <-h.register:
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = map[*Client]bool{}
			}
			h.rooms[c.Room][c] = true
		case c := <-h.unregister:
			h.remove(c)
		case m := <-h.broadcast:
			for c := range h.rooms[m.room] {
				select {
				case c.Send <- m.data:
				default:
					// Slow or dead client.
					h.remove(c)
				}
			}
		}
	}
}

// Stop ends Run and closes every client's send channel. Later calls to
// Register, Unregister and Broadcast become no-ops.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.closeSend()
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast sends typ/payload to everyone in room.
func (h *Hub) Broadcast(room, typ string, payload any) {
	data, err := Encode(typ, payload)
	if err != nil {
		log.Printf("ws broadcast marshal error: room=%s type=%s err=%v", room, typ, err)
		return
	}
	select {
	case h.broadcast <- message{room: room, data: data}:
	case <-h.done:
	}
}

func (h *Hub) remove(c *Client) {
	if c == nil {
		return
	}
	if clients := h.rooms[c.Room]; clients != nil {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, c.Room)
		}
	}
	c.closeSend()
}
