// Package draft turns a chat topic into a GitHub-style issue draft using a
// deterministic rule pipeline: language detection, keyword labeling,
// expected/actual/steps extraction, evidence ranking and Markdown
// composition. No external AI service is involved.
package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/config"
	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

type topicRepo interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
}

type messageRepo interface {
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.Message, error)
}

type roomRepo interface {
	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
}

// Service generates issue drafts from topics.
type Service struct {
	topics   topicRepo
	messages messageRepo
	rooms    roomRepo
	cfg      config.DraftConfig
	log      *slog.Logger
}

// NewService creates a new Draft service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	messages messageRepo,
	rooms roomRepo,
	cfg config.DraftConfig,
) *Service {
	return &Service{
		topics:   topics,
		messages: messages,
		rooms:    rooms,
		cfg:      cfg,
		log:      log.With("service", "draft"),
	}
}

// GenerateDraft builds an issue draft from the topic's bound messages.
// The same topic contents always produce the same draft.
func (s *Service) GenerateDraft(ctx context.Context, topicID uuid.UUID) (*domain.IssueDraft, error) {
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

	member, err := s.rooms.IsMember(ctx, topic.RoomID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domain.ErrUnauthorized
	}

	messages, err := s.messages.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list topic messages: %w", err)
	}

	d := Generate(topic, messages, s.cfg.OutputLang)

	s.log.InfoContext(ctx, "issue draft generated",
		slog.String("topic_id", topicID.String()),
		slog.Int("messages", len(messages)),
		slog.Any("labels", d.Labels),
	)

	return d, nil
}

// Generate runs the pure pipeline over a topic and its messages.
// outputLang is "en" for English output or "auto" to follow the
// conversation language.
func Generate(topic *domain.Topic, messages []*domain.Message, outputLang string) *domain.IssueDraft {
	l := detectLang(messages)
	en := outputLang == config.OutputLangEN || l == langEN

	label := detectPrimaryLabel(topic.Title, messages)
	area := guessArea(messages)
	evidence := pickTopMessages(messages)

	summary := buildSummary(label, area, en)
	expected := extractExpected(messages, l)
	actual := extractActual(messages, l)
	steps := extractSteps(messages, l)
	todo := buildTodo(label, topic.Title, en)

	body := buildBody(topic.ID, summary, label, expected, actual, steps, evidence, todo, en)

	labels := []string{label}
	if area != "" {
		labels = append(labels, area)
	}

	return &domain.IssueDraft{
		Title:  topic.Title,
		Body:   body,
		Labels: labels,
	}
}
