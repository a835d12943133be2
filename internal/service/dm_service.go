package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/events"
	"github.com/Sunnycharan27/loopyncapp/internal/metrics"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

const messagePreviewLen = 50

type DMService struct {
	users      repository.UserRepository
	friends    repository.FriendRepository
	blocks     repository.BlockRepository
	dms        repository.DMRepository
	dispatcher *events.Dispatcher
	logger     *zap.SugaredLogger
}

func NewDMService(
	users repository.UserRepository,
	friends repository.FriendRepository,
	blocks repository.BlockRepository,
	dms repository.DMRepository,
	dispatcher *events.Dispatcher,
	logger *zap.SugaredLogger,
) *DMService {
	return &DMService{
		users:      users,
		friends:    friends,
		blocks:     blocks,
		dms:        dms,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *DMService) blockedEither(ctx context.Context, a, b string) (bool, error) {
	if blocked, err := s.blocks.IsBlocked(ctx, a, b); err != nil || blocked {
		return blocked, err
	}
	return s.blocks.IsBlocked(ctx, b, a)
}

// GetOrCreateThread returns the canonical thread for the pair, creating it if
// the two users are friends and neither blocks the other.
func (s *DMService) GetOrCreateThread(ctx context.Context, userID, peerID string) (*models.DMThread, error) {
	if userID == peerID {
		return nil, apperrors.ErrSelfTarget
	}
	if _, err := s.users.GetUser(ctx, peerID); err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	blocked, err := s.blockedEither(ctx, userID, peerID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperrors.ErrBlocked
	}

	thread, err := s.dms.GetThreadByPair(ctx, userID, peerID)
	if err == nil {
		return thread, nil
	}
	if err != repository.ErrNoDocument {
		return nil, err
	}

	friends, err := s.friends.AreFriends(ctx, userID, peerID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, apperrors.ErrNotFriends
	}

	now := time.Now().UTC()
	u1, u2 := models.CanonicalPair(userID, peerID)
	thread = &models.DMThread{
		ID:            uuid.New().String(),
		User1ID:       u1,
		User2ID:       u2,
		CreatedAt:     now,
		LastMessageAt: now,
	}
	if err := s.dms.CreateThread(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// ListThreads returns the caller's threads newest-activity-first, each with
// peer profile, last message and unread count.
func (s *DMService) ListThreads(ctx context.Context, userID string, cursor, limit int64) ([]*models.ThreadView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	threads, err := s.dms.ListThreads(ctx, userID, cursor, limit)
	if err != nil {
		return nil, err
	}
	views := make([]*models.ThreadView, 0, len(threads))
	for _, t := range threads {
		v := &models.ThreadView{Thread: t}
		peerID := t.Peer(userID)

		if peer, err := s.users.GetUser(ctx, peerID); err == nil {
			v.Peer = peer
		} else if err != repository.ErrNoDocument {
			return nil, err
		}
		if last, err := s.dms.LastMessage(ctx, t.ID); err == nil {
			v.LastMessage = last
		} else if err != repository.ErrNoDocument {
			return nil, err
		}

		var after time.Time
		if read, err := s.dms.GetRead(ctx, t.ID, userID); err == nil {
			if msg, err := s.dms.GetMessage(ctx, read.LastReadMessageID); err == nil {
				after = msg.CreatedAt
			} else if err != repository.ErrNoDocument {
				return nil, err
			}
		} else if err != repository.ErrNoDocument {
			return nil, err
		}
		unread, err := s.dms.CountUnread(ctx, t.ID, peerID, after)
		if err != nil {
			return nil, err
		}
		v.UnreadCount = unread

		views = append(views, v)
	}
	return views, nil
}

// SendMessage appends to the thread, bumps its activity timestamp and fans out
// a realtime event to the peer. The peer also gets a notification unless they
// have muted the sender.
func (s *DMService) SendMessage(ctx context.Context, threadID, senderID, text, mediaURL, mimeType string) (*models.DMMessage, error) {
	if text == "" && mediaURL == "" {
		return nil, apperrors.ErrEmptyMessage
	}
	thread, err := s.dms.GetThread(ctx, threadID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, err
	}
	if !thread.HasParticipant(senderID) {
		return nil, apperrors.ErrNotParticipant
	}
	peerID := thread.Peer(senderID)
	blocked, err := s.blockedEither(ctx, senderID, peerID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperrors.ErrBlocked
	}

	msg := &models.DMMessage{
		ID:        uuid.New().String(),
		ThreadID:  thread.ID,
		SenderID:  senderID,
		Text:      text,
		MediaURL:  mediaURL,
		MimeType:  mimeType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.dms.InsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.dms.TouchThread(ctx, thread.ID, msg.CreatedAt); err != nil {
		return nil, err
	}
	metrics.MessagesSent.Inc()

	effects := []events.Effect{
		events.Emit{UserID: peerID, Event: events.Event{Type: events.TypeMessage, Payload: msg}},
	}
	muted, err := s.blocks.IsMuted(ctx, peerID, senderID)
	if err != nil {
		s.logger.Warnw("mute lookup failed", "threadId", thread.ID, "error", err)
	}
	if !muted {
		effects = append(effects, events.Notify{Notification: &models.Notification{
			ID:     uuid.New().String(),
			UserID: peerID,
			Type:   models.NotifDM,
			Payload: map[string]any{
				"fromUserId": senderID,
				"threadId":   thread.ID,
				"preview":    messagePreview(msg),
			},
			CreatedAt: msg.CreatedAt,
		}})
	}
	s.dispatcher.Dispatch(ctx, effects...)
	return msg, nil
}

func messagePreview(m *models.DMMessage) string {
	if m.Text == "" {
		return "Sent media"
	}
	runes := []rune(m.Text)
	if len(runes) <= messagePreviewLen {
		return m.Text
	}
	return string(runes[:messagePreviewLen])
}

// ListMessages returns a page of non-deleted messages in chronological order.
// A non-zero before timestamp pages backwards through history.
func (s *DMService) ListMessages(ctx context.Context, threadID, userID string, before time.Time, limit int64) ([]*models.DMMessage, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	thread, err := s.dms.GetThread(ctx, threadID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, err
	}
	if !thread.HasParticipant(userID) {
		return nil, apperrors.ErrNotParticipant
	}
	msgs, err := s.dms.ListMessages(ctx, threadID, before, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// MarkRead advances the caller's read cursor and tells the peer.
func (s *DMService) MarkRead(ctx context.Context, threadID, userID, lastReadMessageID string) error {
	thread, err := s.dms.GetThread(ctx, threadID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return apperrors.ErrThreadNotFound
		}
		return err
	}
	if !thread.HasParticipant(userID) {
		return apperrors.ErrNotParticipant
	}
	msg, err := s.dms.GetMessage(ctx, lastReadMessageID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return apperrors.ErrMessageNotFound
		}
		return err
	}
	if msg.ThreadID != thread.ID {
		return apperrors.ErrMessageNotFound
	}
	if err := s.dms.UpsertRead(ctx, &models.MessageRead{
		ThreadID:          thread.ID,
		UserID:            userID,
		LastReadMessageID: lastReadMessageID,
		ReadAt:            time.Now().UTC(),
	}); err != nil {
		return err
	}
	s.dispatcher.Dispatch(ctx, events.Emit{UserID: thread.Peer(userID), Event: events.Event{
		Type: events.TypeRead,
		Payload: map[string]any{
			"threadId":          thread.ID,
			"userId":            userID,
			"lastReadMessageId": lastReadMessageID,
		},
	}})
	return nil
}

// EditMessage replaces the text of the caller's own message and fans out the
// edit to both participants.
func (s *DMService) EditMessage(ctx context.Context, messageID, userID, text string) (*models.DMMessage, error) {
	if text == "" {
		return nil, apperrors.ErrEmptyMessage
	}
	msg, thread, err := s.ownedMessage(ctx, messageID, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if err := s.dms.UpdateMessageText(ctx, msg.ID, text, now); err != nil {
		return nil, err
	}
	msg.Text = text
	msg.EditedAt = &now

	s.fanOut(ctx, thread, events.Event{Type: events.TypeMessageEdited, Payload: msg})
	return msg, nil
}

// DeleteMessage soft-deletes the caller's own message; the document stays but
// drops out of listings, previews and unread counts.
func (s *DMService) DeleteMessage(ctx context.Context, messageID, userID string) error {
	msg, thread, err := s.ownedMessage(ctx, messageID, userID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if err := s.dms.SoftDeleteMessage(ctx, msg.ID, now); err != nil {
		return err
	}
	s.fanOut(ctx, thread, events.Event{
		Type:    events.TypeMessageDeleted,
		Payload: map[string]any{"messageId": msg.ID, "threadId": thread.ID},
	})
	return nil
}

func (s *DMService) ownedMessage(ctx context.Context, messageID, userID string) (*models.DMMessage, *models.DMThread, error) {
	msg, err := s.dms.GetMessage(ctx, messageID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, nil, apperrors.ErrMessageNotFound
		}
		return nil, nil, err
	}
	if msg.DeletedAt != nil {
		return nil, nil, apperrors.ErrMessageDeleted
	}
	if msg.SenderID != userID {
		return nil, nil, apperrors.ErrNotMessageOwner
	}
	thread, err := s.dms.GetThread(ctx, msg.ThreadID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, nil, apperrors.ErrThreadNotFound
		}
		return nil, nil, err
	}
	return msg, thread, nil
}

func (s *DMService) fanOut(ctx context.Context, thread *models.DMThread, ev events.Event) {
	s.dispatcher.Dispatch(ctx,
		events.Emit{UserID: thread.User1ID, Event: ev},
		events.Emit{UserID: thread.User2ID, Event: ev},
	)
}
