package topic

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	RoomID uuid.UUID
	Title  string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.RoomID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "room_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len([]rune(title)) > domain.MaxTopicTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 160 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTopicsInput holds the parameters for listing a room's topics.
type ListTopicsInput struct {
	RoomID uuid.UUID
	Status *domain.TopicStatus
}

// Validate checks all fields and collects all errors.
func (i ListTopicsInput) Validate() error {
	var errs []domain.FieldError

	if i.RoomID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "room_id", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be OPEN or CLOSED"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AssignMessagesInput holds the parameters for binding messages to a topic.
type AssignMessagesInput struct {
	TopicID    uuid.UUID
	MessageIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AssignMessagesInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if len(i.MessageIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "message_ids", Message: "at least one message required"})
	}
	if len(i.MessageIDs) > MaxAssignBatch {
		errs = append(errs, domain.FieldError{Field: "message_ids", Message: "max 200 messages per batch"})
	}
	seen := make(map[uuid.UUID]struct{}, len(i.MessageIDs))
	for _, id := range i.MessageIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "message_ids", Message: "must not contain nil IDs"})
			break
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "message_ids", Message: "must not contain duplicates"})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
