package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

// AssignMessages binds a batch of messages to a topic.
// The batch is all-or-nothing: every message must exist and belong to the
// topic's room, and the topic must be OPEN, before any binding happens.
// A single bad message fails the whole batch with no partial writes.
// Messages already bound to another topic are rebound; messages already
// bound to this topic stay bound.
func (s *Service) AssignMessages(ctx context.Context, input AssignMessagesInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		topic, err := s.topics.GetByIDForUpdate(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("lock topic: %w", err)
		}

		if err := s.requireMember(txCtx, topic.RoomID, userID); err != nil {
			return err
		}

		if topic.IsClosed() {
			return fmt.Errorf("topic %s: %w", topic.ID, domain.ErrTopicClosed)
		}

		messages, err := s.messages.GetByIDs(txCtx, input.MessageIDs)
		if err != nil {
			return fmt.Errorf("load messages: %w", err)
		}

		// Validate the full batch before touching anything.
		if len(messages) != len(input.MessageIDs) {
			found := make(map[uuid.UUID]struct{}, len(messages))
			for _, m := range messages {
				found[m.ID] = struct{}{}
			}
			for _, id := range input.MessageIDs {
				if _, ok := found[id]; !ok {
					return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
				}
			}
		}

		for _, m := range messages {
			if m.RoomID != topic.RoomID {
				return fmt.Errorf("message %s is in another room: %w", m.ID, domain.ErrRoomMismatch)
			}
		}

		if _, err := s.messages.AssignTopic(txCtx, input.MessageIDs, topic.ID); err != nil {
			return fmt.Errorf("assign messages: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "messages assigned to topic",
		slog.String("topic_id", input.TopicID.String()),
		slog.Int("count", len(input.MessageIDs)),
	)

	return s.topics.GetByID(ctx, input.TopicID)
}

// UnassignMessage removes a message's topic binding. The binding is
// cleared regardless of the owning topic's status; closing a topic only
// stops new bindings, it never pins existing ones. Unassigning an
// unbound message is a no-op.
func (s *Service) UnassignMessage(ctx context.Context, messageID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if messageID == uuid.Nil {
		return domain.NewValidationError("message_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		msg, err := s.messages.GetByID(txCtx, messageID)
		if err != nil {
			return fmt.Errorf("get message: %w", err)
		}

		if err := s.requireMember(txCtx, msg.RoomID, userID); err != nil {
			return err
		}

		if msg.TopicID == nil {
			return nil
		}

		if err := s.messages.ClearTopic(txCtx, messageID); err != nil {
			return fmt.Errorf("clear topic: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "message unassigned",
		slog.String("message_id", messageID.String()),
	)

	return nil
}
