package service

import (
	"context"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

type NotificationService struct {
	notifs repository.NotificationRepository
}

func NewNotificationService(notifs repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifs: notifs}
}

func (s *NotificationService) List(ctx context.Context, userID string, limit int64) ([]*models.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	out, err := s.notifs.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*models.Notification{}
	}
	return out, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.notifs.MarkRead(ctx, id); err != nil {
		if err == repository.ErrNoDocument {
			return apperrors.ErrNotifNotFound
		}
		return err
	}
	return nil
}
