package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Client is one websocket subscriber bound to a single room.
type Client struct {
	Conn *websocket.Conn
	Hub  *Hub

	Room   string
	Caller string

	Send chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(conn *websocket.Conn, hub *Hub, room, caller string) *Client {
	return &Client{
		Conn:   conn,
		Hub:    hub,
		Room:   room,
		Caller: caller,
		Send:   make(chan []byte, 64),
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// ReadPump drains inbound frames so pongs and close frames are processed.
// Subscribers are receive-only; any data frame they send is ignored.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister(c)
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("ws ping error: caller=%s room=%s err=%v", c.Caller, c.Room, err)
				return
			}
		}
	}
}

// SendDirect queues typ/payload for this client only, dropping it if the buffer is full.
func (c *Client) SendDirect(typ string, payload any) error {
	data, err := Encode(typ, payload)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	select {
	case c.Send <- data:
	default:
		log.Printf("ws send drop: caller=%s room=%s type=%s", c.Caller, c.Room, typ)
	}
	return nil
}
