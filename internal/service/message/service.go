// Package message implements sending and reading chat messages, including
// the room-scoped listings the triage screens are built on.
package message

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

type messageRepo interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	GetByID(ctx context.Context, messageID uuid.UUID) (*domain.Message, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID, filter domain.MessageFilter) ([]*domain.Message, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.Message, error)
	Search(ctx context.Context, roomID uuid.UUID, query string, limit int) ([]*domain.Message, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetByIDForUpdate(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
}

type roomRepo interface {
	GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultSearchLimit caps search results when the caller does not set one.
const DefaultSearchLimit = 50

// Service provides message operations.
type Service struct {
	messages messageRepo
	topics   topicRepo
	rooms    roomRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Message service.
func NewService(
	log *slog.Logger,
	messages messageRepo,
	topics topicRepo,
	rooms roomRepo,
	tx txManager,
) *Service {
	return &Service{
		messages: messages,
		topics:   topics,
		rooms:    rooms,
		tx:       tx,
		log:      log.With("service", "message"),
	}
}

func (s *Service) requireMember(ctx context.Context, roomID, userID uuid.UUID) error {
	ok, err := s.rooms.IsMember(ctx, roomID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}
