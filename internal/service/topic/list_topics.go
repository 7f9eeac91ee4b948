package topic

import (
	"context"
	"fmt"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

// ListTopics returns the topics of a room, newest first, optionally
// narrowed to one status.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) ([]*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireMember(ctx, input.RoomID, userID); err != nil {
		return nil, err
	}

	topics, err := s.topics.List(ctx, input.RoomID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}
