package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

// SendMessage stores a message in a room the user is a member of.
// When TopicID is set, the target topic must exist, be OPEN and belong to
// the same room; the message is then created already bound to it. The
// bound variant runs in a transaction holding the topic row lock so a
// concurrent close cannot slip between the check and the insert.
func (s *Service) SendMessage(ctx context.Context, input SendMessageInput) (*domain.Message, error) {
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

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		tags = append(tags, strings.ToLower(strings.TrimSpace(tag)))
	}

	pending := &domain.Message{
		RoomID:   input.RoomID,
		SenderID: userID,
		Content:  strings.TrimSpace(input.Content),
		Tags:     tags,
		TopicID:  input.TopicID,
	}

	var msg *domain.Message
	if input.TopicID != nil {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			topic, txErr := s.topics.GetByIDForUpdate(txCtx, *input.TopicID)
			if txErr != nil {
				return fmt.Errorf("lock topic: %w", txErr)
			}
			if topic.RoomID != input.RoomID {
				return fmt.Errorf("topic %s: %w", topic.ID, domain.ErrRoomMismatch)
			}
			if topic.IsClosed() {
				return fmt.Errorf("topic %s: %w", topic.ID, domain.ErrTopicClosed)
			}

			msg, txErr = s.messages.Create(txCtx, pending)
			if txErr != nil {
				return fmt.Errorf("create message: %w", txErr)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		created, err := s.messages.Create(ctx, pending)
		if err != nil {
			return nil, fmt.Errorf("create message: %w", err)
		}
		msg = created
	}

	s.log.InfoContext(ctx, "message sent",
		slog.String("room_id", input.RoomID.String()),
		slog.String("message_id", msg.ID.String()),
	)

	return msg, nil
}
