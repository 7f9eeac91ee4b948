package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

// CreateTopic creates a new OPEN topic in a room the user is a member of.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.rooms.GetByID(ctx, input.RoomID); err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if err := s.requireMember(ctx, input.RoomID, userID); err != nil {
		return nil, err
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		RoomID:    input.RoomID,
		CreatedBy: userID,
		Title:     strings.TrimSpace(input.Title),
		Status:    domain.TopicStatusOpen,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("room_id", input.RoomID.String()),
		slog.String("topic_id", topic.ID.String()),
	)

	return topic, nil
}
