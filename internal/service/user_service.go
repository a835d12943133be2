package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

// PresenceReader reports live connection state; nil when redis is disabled.
type PresenceReader interface {
	GetPresence(ctx context.Context, userID string) (map[string]any, error)
}

type UserService struct {
	users    repository.UserRepository
	presence PresenceReader
	logger   *zap.SugaredLogger
}

func NewUserService(users repository.UserRepository, presence PresenceReader, logger *zap.SugaredLogger) *UserService {
	return &UserService{users: users, presence: presence, logger: logger}
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Profile is the public view of a user: the stored document plus live
// presence when a presence store is configured. Presence lookups are
// best-effort; a miss just omits the field.
func (s *UserService) Profile(ctx context.Context, id string) (*models.Profile, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	p := &models.Profile{User: u}
	if s.presence != nil {
		if pr, err := s.presence.GetPresence(ctx, id); err == nil {
			p.Presence = pr
		}
	}
	return p, nil
}

// UpdateProfile applies a profile edit; only the owner may edit a profile.
func (s *UserService) UpdateProfile(ctx context.Context, actorID, targetID string, upd models.ProfileUpdate) (*models.User, error) {
	if actorID != targetID {
		return nil, apperrors.ErrNotProfileOwner
	}
	if err := s.users.UpdateProfile(ctx, targetID, upd); err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return s.GetUser(ctx, targetID)
}
