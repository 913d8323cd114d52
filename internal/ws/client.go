package ws

import "sync"

// Client is one WebSocket connection with its user context. Outbound frames
// go through Send; the write pump drains it.
type Client struct {
	UserID string
	Role   string
	Send   chan []byte

	mu     sync.Mutex
	closed bool
	room   *Room
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
	if c.room != nil {
		c.room.Leave(c)
	}
}
