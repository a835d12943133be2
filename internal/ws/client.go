package ws

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

type Client struct {
	Conn      *websocket.Conn
	UserID    string
	SocketID  string
	Send      chan []byte
	Connected time.Time

	mu     sync.Mutex
	closed bool
}

func NewClient(conn *websocket.Conn, userID, socketID string) *Client {
	return &Client{
		Conn:      conn,
		UserID:    userID,
		SocketID:  socketID,
		Send:      make(chan []byte, 256),
		Connected: time.Now().UTC(),
	}
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.Send)
		if c.Conn != nil {
			_ = c.Conn.Close()
		}
		c.closed = true
	}
}
