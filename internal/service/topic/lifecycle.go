package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

// CloseTopic transitions a topic to CLOSED and stamps closed_at.
// Closing an already closed topic is a no-op that returns the topic
// unchanged: closed_at keeps its original value.
// Concurrent lifecycle calls on the same topic serialize on a row lock,
// so exactly one of two racing closes performs the transition.
func (s *Service) CloseTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	return s.setStatus(ctx, topicID, domain.TopicStatusClosed)
}

// ReopenTopic transitions a topic back to OPEN and clears closed_at.
// Reopening an open topic is a no-op.
func (s *Service) ReopenTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	return s.setStatus(ctx, topicID, domain.TopicStatusOpen)
}

func (s *Service) setStatus(ctx context.Context, topicID uuid.UUID, target domain.TopicStatus) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	var result *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.topics.GetByIDForUpdate(txCtx, topicID)
		if err != nil {
			return fmt.Errorf("lock topic: %w", err)
		}

		if err := s.requireMember(txCtx, current.RoomID, userID); err != nil {
			return err
		}

		if current.Status == target {
			result = current
			return nil
		}

		switch target {
		case domain.TopicStatusClosed:
			now := s.now()
			result, err = s.topics.SetStatus(txCtx, topicID, target, &now)
		default:
			result, err = s.topics.SetStatus(txCtx, topicID, target, nil)
		}
		if err != nil {
			return fmt.Errorf("set status: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic status changed",
		slog.String("topic_id", topicID.String()),
		slog.String("status", result.Status.String()),
	)

	return result, nil
}
