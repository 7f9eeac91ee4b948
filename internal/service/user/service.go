// Package user implements account registration, credential login and
// presence touch.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	TouchLastSeen(ctx context.Context, userID uuid.UUID) error
}

type tokenGenerator interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
}

// Service provides user account operations.
type Service struct {
	users  userRepo
	tokens tokenGenerator
	log    *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, tokens tokenGenerator) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		log:    log.With("service", "user"),
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User        *domain.User
	AccessToken string
}

// GetByID returns a user's public profile.
func (s *Service) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	return s.users.GetByID(ctx, userID)
}

// Touch bumps the caller's last-seen timestamp.
func (s *Service) Touch(ctx context.Context, userID uuid.UUID) error {
	return s.users.TouchLastSeen(ctx, userID)
}
