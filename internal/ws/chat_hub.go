package ws

import (
	"encoding/json"
	"sync"
)

// Room is the live chat channel for one alert: the reporting citizen plus
// any connected admins.
type Room struct {
	AlertID string

	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func newRoom(alertID string) *Room {
	return &Room{AlertID: alertID, clients: make(map[*Client]struct{})}
}

func (r *Room) Join(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c] = struct{}{}
	c.room = r
}

func (r *Room) Leave(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c)
}

// Broadcast sends payload to every client in the room except from. Slow
// consumers are skipped rather than blocking the sender.
func (r *Room) Broadcast(from *Client, payload interface{}) {
	data, _ := json.Marshal(payload)
	r.mu.RLock()
	clients := make([]*Client, 0, len(r.clients))
	for c := range r.clients {
		if c != from {
			clients = append(clients, c)
		}
	}
	r.mu.RUnlock()
	for _, c := range clients {
		select {
		case c.Send <- data:
		default:
		}
	}
}

// ChatHub holds all chat rooms keyed by alert id.
type ChatHub struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewChatHub() *ChatHub {
	return &ChatHub{rooms: make(map[string]*Room)}
}

func (h *ChatHub) GetOrCreateRoom(alertID string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[alertID]; ok {
		return r
	}
	r := newRoom(alertID)
	h.rooms[alertID] = r
	return r
}
