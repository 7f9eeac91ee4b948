package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

// GetTopic returns a topic with derived message stats.
// The caller must be a member of the topic's room.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	if err := s.requireMember(ctx, topic.RoomID, userID); err != nil {
		return nil, err
	}

	return topic, nil
}
