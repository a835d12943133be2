package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/pkg/logger"
)

type memNotifRepo struct {
	mu    sync.Mutex
	items []*models.Notification
	fail  bool
}

func (r *memNotifRepo) Insert(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("write refused")
	}
	r.items = append(r.items, n)
	return nil
}

func (r *memNotifRepo) ListForUser(_ context.Context, userID string, limit int64) ([]*models.Notification, error) {
	return nil, nil
}

func (r *memNotifRepo) MarkRead(_ context.Context, id string) error { return nil }

type memSender struct {
	mu   sync.Mutex
	sent map[string][][]byte
}

func (s *memSender) SendToUser(userID string, msg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sent == nil {
		s.sent = map[string][][]byte{}
	}
	s.sent[userID] = append(s.sent[userID], msg)
}

type memPublisher struct {
	keys [][2]string
	fail bool
}

func (p *memPublisher) Publish(_ context.Context, userID string, payload []byte) error {
	if p.fail {
		return errors.New("broker down")
	}
	p.keys = append(p.keys, [2]string{userID, string(payload)})
	return nil
}

func TestDispatchPersistsAndDelivers(t *testing.T) {
	repo := &memNotifRepo{}
	sender := &memSender{}
	pub := &memPublisher{}
	d := NewDispatcher(repo, sender, pub, logger.Nop())

	d.Dispatch(context.Background(),
		Notify{Notification: &models.Notification{ID: "n1", UserID: "u1", Type: models.NotifDM}},
		Emit{UserID: "u2", Event: Event{Type: TypeMessage, Payload: map[string]any{"text": "hi"}}},
	)

	require.Len(t, repo.items, 1)
	assert.Equal(t, "u1", repo.items[0].UserID)

	require.Len(t, sender.sent["u2"], 1)
	var ev Event
	require.NoError(t, json.Unmarshal(sender.sent["u2"][0], &ev))
	assert.Equal(t, TypeMessage, ev.Type)

	// emits are mirrored keyed by recipient
	require.Len(t, pub.keys, 1)
	assert.Equal(t, "u2", pub.keys[0][0])
}

func TestDispatchSwallowsFailures(t *testing.T) {
	repo := &memNotifRepo{fail: true}
	sender := &memSender{}
	d := NewDispatcher(repo, sender, &memPublisher{fail: true}, logger.Nop())

	// none of these should panic or abort the batch
	d.Dispatch(context.Background(),
		Notify{Notification: &models.Notification{ID: "n1", UserID: "u1"}},
		Emit{UserID: "u2", Event: Event{Type: TypeRead}},
	)

	assert.Empty(t, repo.items)
	assert.Len(t, sender.sent["u2"], 1)
}

func TestDispatchNilPublisher(t *testing.T) {
	repo := &memNotifRepo{}
	sender := &memSender{}
	d := NewDispatcher(repo, sender, nil, logger.Nop())

	d.Dispatch(context.Background(), Emit{UserID: "u1", Event: Event{Type: TypeTyping}})
	assert.Len(t, sender.sent["u1"], 1)
}
