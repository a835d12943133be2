package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

type BlockService struct {
	users   repository.UserRepository
	friends repository.FriendRepository
	blocks  repository.BlockRepository
	logger  *zap.SugaredLogger
}

func NewBlockService(
	users repository.UserRepository,
	friends repository.FriendRepository,
	blocks repository.BlockRepository,
	logger *zap.SugaredLogger,
) *BlockService {
	return &BlockService{users: users, friends: friends, blocks: blocks, logger: logger}
}

func (s *BlockService) targetExists(ctx context.Context, userID string) error {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		if err == repository.ErrNoDocument {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}

// Block records the directed relation and severs the pair: the friendship edge
// is removed and pending requests in both directions are cancelled. Repeat
// blocks are no-ops.
func (s *BlockService) Block(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == blockedID {
		return apperrors.ErrSelfTarget
	}
	if err := s.targetExists(ctx, blockedID); err != nil {
		return err
	}
	if err := s.blocks.CreateBlock(ctx, blockerID, blockedID); err != nil {
		return err
	}
	if err := s.friends.DeleteFriendship(ctx, blockerID, blockedID); err != nil {
		return err
	}
	return s.friends.CancelPendingBetween(ctx, blockerID, blockedID, time.Now().UTC())
}

func (s *BlockService) Unblock(ctx context.Context, blockerID, blockedID string) error {
	deleted, err := s.blocks.DeleteBlock(ctx, blockerID, blockedID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrBlockNotFound
	}
	return nil
}

func (s *BlockService) ListBlocks(ctx context.Context, blockerID string) ([]*models.UserBlock, error) {
	return s.blocks.ListBlocks(ctx, blockerID)
}

// Mute suppresses notification creation from the muted user; delivery of
// messages and realtime events is untouched.
func (s *BlockService) Mute(ctx context.Context, muterID, mutedID string) error {
	if muterID == mutedID {
		return apperrors.ErrSelfTarget
	}
	if err := s.targetExists(ctx, mutedID); err != nil {
		return err
	}
	return s.blocks.CreateMute(ctx, muterID, mutedID)
}

func (s *BlockService) Unmute(ctx context.Context, muterID, mutedID string) error {
	deleted, err := s.blocks.DeleteMute(ctx, muterID, mutedID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrMuteNotFound
	}
	return nil
}

func (s *BlockService) ListMutes(ctx context.Context, muterID string) ([]*models.UserMute, error) {
	return s.blocks.ListMutes(ctx, muterID)
}
