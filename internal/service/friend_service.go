package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/events"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

// friendBonusCredits is awarded to both sides when a request is accepted.
const friendBonusCredits = 10.0

// CreditAwarder is the wallet dependency of the friend flow.
type CreditAwarder interface {
	AwardCredit(ctx context.Context, userID string, amount float64, source string) error
}

type FriendService struct {
	users      repository.UserRepository
	friends    repository.FriendRepository
	blocks     repository.BlockRepository
	dms        repository.DMRepository
	wallet     CreditAwarder
	dispatcher *events.Dispatcher
	logger     *zap.SugaredLogger
}

func NewFriendService(
	users repository.UserRepository,
	friends repository.FriendRepository,
	blocks repository.BlockRepository,
	dms repository.DMRepository,
	wallet CreditAwarder,
	dispatcher *events.Dispatcher,
	logger *zap.SugaredLogger,
) *FriendService {
	return &FriendService{
		users:      users,
		friends:    friends,
		blocks:     blocks,
		dms:        dms,
		wallet:     wallet,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *FriendService) blockedEither(ctx context.Context, a, b string) (bool, error) {
	if blocked, err := s.blocks.IsBlocked(ctx, a, b); err != nil || blocked {
		return blocked, err
	}
	return s.blocks.IsBlocked(ctx, b, a)
}

func (s *FriendService) SendFriendRequest(ctx context.Context, fromID, toID string) (*models.FriendRequest, error) {
	if fromID == toID {
		return nil, apperrors.ErrSelfTarget
	}
	if _, err := s.users.GetUser(ctx, toID); err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	blocked, err := s.blockedEither(ctx, fromID, toID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperrors.ErrBlocked
	}
	friends, err := s.friends.AreFriends(ctx, fromID, toID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, apperrors.ErrAlreadyFriends
	}
	// only the exact (from,to) direction is checked; an opposite-direction
	// pending request does not conflict
	pending, err := s.friends.PendingRequestExists(ctx, fromID, toID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.ErrRequestPending
	}

	fr := &models.FriendRequest{
		ID:         uuid.New().String(),
		FromUserID: fromID,
		ToUserID:   toID,
		Status:     models.FriendRequestPending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.friends.CreateRequest(ctx, fr); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx,
		events.Notify{Notification: &models.Notification{
			ID:        uuid.New().String(),
			UserID:    toID,
			Type:      models.NotifFriendRequest,
			Payload:   map[string]any{"fromUserId": fromID, "requestId": fr.ID},
			CreatedAt: fr.CreatedAt,
		}},
		events.Emit{UserID: toID, Event: events.Event{
			Type:    events.TypeFriendRequest,
			Payload: fr,
		}},
	)
	return fr, nil
}

// AcceptFriendRequest transitions the request, creates the canonical edge,
// auto-creates the DM thread if absent and awards the loyalty bonus to both
// sides.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	fr, err := s.friends.GetRequest(ctx, requestID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	if fr.Status != models.FriendRequestPending {
		return nil, apperrors.ErrRequestDecided
	}

	now := time.Now().UTC()
	if err := s.friends.UpdateRequestStatus(ctx, fr.ID, models.FriendRequestAccepted, now); err != nil {
		return nil, err
	}
	fr.Status = models.FriendRequestAccepted
	fr.DecidedAt = &now

	if err := s.friends.CreateFriendship(ctx, fr.FromUserID, fr.ToUserID); err != nil {
		return nil, err
	}

	// thread creation bypasses the friendship check: it was just established
	if _, err := s.dms.GetThreadByPair(ctx, fr.FromUserID, fr.ToUserID); err == repository.ErrNoDocument {
		u1, u2 := models.CanonicalPair(fr.FromUserID, fr.ToUserID)
		thread := &models.DMThread{
			ID:            uuid.New().String(),
			User1ID:       u1,
			User2ID:       u2,
			CreatedAt:     now,
			LastMessageAt: now,
		}
		if err := s.dms.CreateThread(ctx, thread); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	for _, userID := range []string{fr.FromUserID, fr.ToUserID} {
		if err := s.wallet.AwardCredit(ctx, userID, friendBonusCredits, "friend"); err != nil {
			s.logger.Warnw("friend bonus award failed", "userId", userID, "error", err)
		}
	}

	s.dispatcher.Dispatch(ctx,
		events.Notify{Notification: &models.Notification{
			ID:        uuid.New().String(),
			UserID:    fr.FromUserID,
			Type:      models.NotifFriendAccepted,
			Payload:   map[string]any{"friendId": fr.ToUserID, "requestId": fr.ID},
			CreatedAt: now,
		}},
		events.Notify{Notification: &models.Notification{
			ID:        uuid.New().String(),
			UserID:    fr.ToUserID,
			Type:      models.NotifFriendAccepted,
			Payload:   map[string]any{"friendId": fr.FromUserID, "requestId": fr.ID},
			CreatedAt: now,
		}},
		events.Emit{UserID: fr.FromUserID, Event: events.Event{
			Type:    events.TypeFriendEvent,
			Payload: map[string]any{"event": "accepted", "friendId": fr.ToUserID},
		}},
		events.Emit{UserID: fr.ToUserID, Event: events.Event{
			Type:    events.TypeFriendEvent,
			Payload: map[string]any{"event": "accepted", "friendId": fr.FromUserID},
		}},
	)
	return fr, nil
}

func (s *FriendService) RejectFriendRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	return s.decideRequest(ctx, requestID, models.FriendRequestDeclined)
}

func (s *FriendService) CancelFriendRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	return s.decideRequest(ctx, requestID, models.FriendRequestCancelled)
}

func (s *FriendService) decideRequest(ctx context.Context, requestID string, status models.FriendRequestStatus) (*models.FriendRequest, error) {
	fr, err := s.friends.GetRequest(ctx, requestID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	if fr.Status != models.FriendRequestPending {
		return nil, apperrors.ErrRequestDecided
	}
	now := time.Now().UTC()
	if err := s.friends.UpdateRequestStatus(ctx, fr.ID, status, now); err != nil {
		return nil, err
	}
	fr.Status = status
	fr.DecidedAt = &now
	return fr, nil
}

// RemoveFriend deletes the canonical edge. The removed peer gets a realtime
// event only, no persisted notification. The DM thread is left in place.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, friendID string) error {
	friends, err := s.friends.AreFriends(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if !friends {
		return apperrors.ErrNotFriends
	}
	if err := s.friends.DeleteFriendship(ctx, userID, friendID); err != nil {
		return err
	}
	s.dispatcher.Dispatch(ctx, events.Emit{UserID: friendID, Event: events.Event{
		Type:    events.TypeFriendEvent,
		Payload: map[string]any{"event": "removed", "friendId": userID},
	}})
	return nil
}

func (s *FriendService) AreFriends(ctx context.Context, a, b string) (bool, error) {
	return s.friends.AreFriends(ctx, a, b)
}

func (s *FriendService) ListRequests(ctx context.Context, userID string) ([]*models.FriendRequest, error) {
	return s.friends.ListRequests(ctx, userID)
}

// ListFriends returns the user's friends, optionally filtered by a name or
// handle substring, with offset pagination.
func (s *FriendService) ListFriends(ctx context.Context, userID, q string, cursor, limit int64) ([]*models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	ids, err := s.friends.ListFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	return s.users.FindUsersIn(ctx, ids, q, cursor, limit)
}
