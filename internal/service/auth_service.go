package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/auth"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	logger *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// AuthResult pairs the profile with a fresh access token.
type AuthResult struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

func (s *AuthService) Signup(ctx context.Context, handle, name, password string) (*AuthResult, error) {
	if handle == "" || name == "" || len(password) < 6 {
		return nil, apperrors.InvalidArg("handle, name and a password of at least 6 characters are required")
	}
	if _, err := s.users.GetUserByHandle(ctx, handle); err == nil {
		return nil, apperrors.ErrHandleTaken
	} else if err != repository.ErrNoDocument {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &models.User{
		ID:        uuid.New().String(),
		Handle:    handle,
		Name:      name,
		Avatar:    fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", handle),
		KYCTier:   1,
		Language:  "en",
		Interests: []string{},
		CreatedAt: now,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	if err := s.users.CreateCredential(ctx, &models.Credential{
		Handle:       handle,
		UserID:       u.ID,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}); err != nil {
		return nil, err
	}
	return s.issue(u)
}

func (s *AuthService) Login(ctx context.Context, handle, password string) (*AuthResult, error) {
	u, err := s.users.GetUserByHandle(ctx, handle)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	cred, err := s.users.GetCredential(ctx, handle)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrBadCredentials
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *models.User) (*AuthResult, error) {
	token, exp, err := s.tokens.Generate(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) CompleteOnboarding(ctx context.Context, userID string, ob models.Onboarding) (*models.User, error) {
	if err := s.users.CompleteOnboarding(ctx, userID, ob); err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return s.Me(ctx, userID)
}
