package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

// Login verifies credentials and issues an access token. Unknown usernames
// and wrong passwords both map to ErrUnauthorized so the response does not
// reveal which accounts exist.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	found, err := s.users.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(found.ID, found.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	if err := s.users.TouchLastSeen(ctx, found.ID); err != nil {
		s.log.WarnContext(ctx, "touch last seen failed", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", found.ID.String()),
	)

	return &AuthResult{User: found, AccessToken: token}, nil
}
