package ws

import "sync"

// Hub is the session registry: user id -> connected clients. It is injected
// into services via the events dispatcher; connect/disconnect are the only
// mutators.
type Hub struct {
	mu            sync.RWMutex
	clientsByUser map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clientsByUser: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Add(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clientsByUser[c.UserID]; !ok {
		h.clientsByUser[c.UserID] = make(map[*Client]struct{})
	}
	h.clientsByUser[c.UserID][c] = struct{}{}
}

func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clientsByUser[c.UserID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clientsByUser, c.UserID)
		}
	}
}

// SendToUser delivers to every socket of the user, best effort: slow consumers
// are skipped rather than blocking the caller.
func (h *Hub) SendToUser(userID string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clientsByUser[userID] {
		select {
		case c.Send <- msg:
		default:
		}
	}
}

// Connected reports whether the user has at least one open socket.
func (h *Hub) Connected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clientsByUser[userID]) > 0
}

// Close disconnects every client; used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.clientsByUser {
		for c := range set {
			c.Close()
		}
	}
	h.clientsByUser = make(map[string]map[*Client]struct{})
}
