package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

// ListRoomMessages returns a room's messages oldest first, optionally only
// those not yet bound to a topic, or only those carrying a tag.
func (s *Service) ListRoomMessages(ctx context.Context, input ListMessagesInput) ([]*domain.Message, error) {
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

	messages, err := s.messages.ListByRoom(ctx, input.RoomID, domain.MessageFilter{
		UnassignedOnly: input.UnassignedOnly,
		Tag:            input.Tag,
		Limit:          input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list room messages: %w", err)
	}

	return messages, nil
}

// ListTopicMessages returns the messages bound to a topic, oldest first.
func (s *Service) ListTopicMessages(ctx context.Context, topicID uuid.UUID) ([]*domain.Message, error) {
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

	messages, err := s.messages.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list topic messages: %w", err)
	}

	return messages, nil
}

// SearchMessages finds room messages by case-insensitive substring,
// newest first.
func (s *Service) SearchMessages(ctx context.Context, input SearchMessagesInput) ([]*domain.Message, error) {
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

	limit := input.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	messages, err := s.messages.Search(ctx, input.RoomID, input.Query, limit)
	if err != nil {
		return nil, fmt.Errorf("search messages: %w", err)
	}

	return messages, nil
}
