// Package topic implements topic triage: creating topics inside a room,
// the OPEN/CLOSED lifecycle, and binding messages to topics.
package topic

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetByIDForUpdate(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context, roomID uuid.UUID, status *domain.TopicStatus) ([]*domain.Topic, error)
	SetStatus(ctx context.Context, topicID uuid.UUID, status domain.TopicStatus, closedAt *time.Time) (*domain.Topic, error)
}

type messageRepo interface {
	GetByID(ctx context.Context, messageID uuid.UUID) (*domain.Message, error)
	GetByIDs(ctx context.Context, messageIDs []uuid.UUID) ([]*domain.Message, error)
	AssignTopic(ctx context.Context, messageIDs []uuid.UUID, topicID uuid.UUID) (int, error)
	ClearTopic(ctx context.Context, messageID uuid.UUID) error
}

type roomRepo interface {
	GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MaxAssignBatch caps how many messages one assign call may bind.
const MaxAssignBatch = 200

// Service provides topic triage operations.
type Service struct {
	topics   topicRepo
	messages messageRepo
	rooms    roomRepo
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	messages messageRepo,
	rooms roomRepo,
	tx txManager,
) *Service {
	return &Service{
		topics:   topics,
		messages: messages,
		rooms:    rooms,
		tx:       tx,
		log:      log.With("service", "topic"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// requireMember checks that the user belongs to the room.
// Returns domain.ErrUnauthorized for non-members.
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
