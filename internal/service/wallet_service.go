package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

type WalletService struct {
	users  repository.UserRepository
	wallet repository.WalletRepository
	logger *zap.SugaredLogger
}

func NewWalletService(users repository.UserRepository, wallet repository.WalletRepository, logger *zap.SugaredLogger) *WalletService {
	return &WalletService{users: users, wallet: wallet, logger: logger}
}

func (s *WalletService) GetWallet(ctx context.Context, userID string) (*models.WalletSummary, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	txs, err := s.wallet.ListTransactions(ctx, userID, 50)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []*models.WalletTransaction{}
	}
	return &models.WalletSummary{
		Balance:      u.WalletBalance,
		KYCTier:      u.KYCTier,
		Transactions: txs,
	}, nil
}

func (s *WalletService) TopUp(ctx context.Context, userID string, amount float64) (*models.WalletTransaction, error) {
	if amount <= 0 {
		return nil, apperrors.ErrBadAmount
	}
	if err := s.users.IncrementWallet(ctx, userID, amount); err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	tx := &models.WalletTransaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        models.TxTopup,
		Amount:      amount,
		Status:      "completed",
		Description: "Wallet top-up",
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.wallet.InsertTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// AwardCredit grants loyalty credits with a tagged source (e.g. "friend").
func (s *WalletService) AwardCredit(ctx context.Context, userID string, amount float64, source string) error {
	if amount <= 0 {
		return apperrors.ErrBadAmount
	}
	if err := s.users.IncrementWallet(ctx, userID, amount); err != nil {
		if err == repository.ErrNoDocument {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return s.wallet.InsertTransaction(ctx, &models.WalletTransaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        models.TxReward,
		Amount:      amount,
		Status:      "completed",
		Description: "Loyalty credit",
		Source:      source,
		CreatedAt:   time.Now().UTC(),
	})
}
