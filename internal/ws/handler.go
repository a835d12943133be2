package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/auth"
	"github.com/Sunnycharan27/loopyncapp/internal/cache"
	"github.com/Sunnycharan27/loopyncapp/internal/events"
	"github.com/Sunnycharan27/loopyncapp/internal/metrics"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

const (
	pingInterval  = 30 * time.Second
	writeDeadline = 10 * time.Second
	maxMsgSize    = 16 << 10
)

// inbound frame from a client; typing is the only client-initiated type.
type envelope struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Handler struct {
	hub      *Hub
	tokens   *auth.TokenManager
	dms      repository.DMRepository
	presence *cache.PresenceStore
	logger   *zap.SugaredLogger
}

func NewHandler(hub *Hub, tokens *auth.TokenManager, dms repository.DMRepository, presence *cache.PresenceStore, logger *zap.SugaredLogger) *Handler {
	return &Handler{hub: hub, tokens: tokens, dms: dms, presence: presence, logger: logger}
}

// Serve handles one upgraded connection at /ws?token=<jwt>.
func (h *Handler) Serve(c *websocket.Conn) {
	token := c.Query("token")
	if token == "" {
		_ = c.WriteMessage(websocket.TextMessage, []byte(`{"error":"missing token"}`))
		_ = c.Close()
		return
	}
	claims, err := h.tokens.Verify(token)
	if err != nil {
		_ = c.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
		_ = c.Close()
		return
	}

	client := NewClient(c, claims.UserID, uuid.New().String())
	h.hub.Add(client)
	metrics.WSConnections.Inc()
	if h.presence != nil {
		_ = h.presence.SetOnline(context.Background(), client.UserID, client.SocketID)
	}
	defer func() {
		h.hub.Remove(client)
		metrics.WSConnections.Dec()
		if h.presence != nil {
			_ = h.presence.SetOffline(context.Background(), client.UserID, client.SocketID)
		}
		client.Close()
	}()

	go h.writeLoop(client)

	c.SetReadLimit(maxMsgSize)
	for {
		mt, msg, err := c.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.TextMessage {
			continue
		}
		var env envelope
		if err := json.Unmarshal(msg, &env); err != nil {
			continue
		}
		switch env.Type {
		case events.TypeTyping:
			h.relayTyping(client.UserID, env.Payload)
		default:
			// unknown client frames are dropped
		}
	}
}

func (h *Handler) writeLoop(client *Client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case b, ok := <-client.Send:
			if !ok {
				_ = client.Conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := client.Conn.WriteMessage(websocket.TextMessage, b); err != nil {
				h.logger.Debugw("ws write failed", "userId", client.UserID, "error", err)
				return
			}
		case <-ticker.C:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// relayTyping forwards a typing indicator to the thread peer after verifying
// the sender actually participates in the thread.
func (h *Handler) relayTyping(userID string, payload map[string]any) {
	threadID, _ := payload["threadId"].(string)
	if threadID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	thread, err := h.dms.GetThread(ctx, threadID)
	if err != nil || !thread.HasParticipant(userID) {
		return
	}
	out, err := json.Marshal(events.Event{
		Type:    events.TypeTyping,
		Payload: map[string]any{"threadId": threadID, "userId": userID},
	})
	if err != nil {
		return
	}
	h.hub.SendToUser(thread.Peer(userID), out)
}
