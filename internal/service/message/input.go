package message

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

// MaxContentLen is the maximum message length in characters.
const MaxContentLen = 4000

// SendMessageInput holds the parameters for sending a message.
// TopicID optionally binds the message to an open topic of the same room.
type SendMessageInput struct {
	RoomID  uuid.UUID
	Content string
	Tags    []string
	TopicID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SendMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.RoomID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "room_id", Message: "required"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len([]rune(content)) > MaxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 4000 characters"})
	}

	for _, tag := range i.Tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "must not contain empty tags"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListMessagesInput holds the parameters for listing a room's messages.
type ListMessagesInput struct {
	RoomID         uuid.UUID
	UnassignedOnly bool
	Tag            string
	Limit          int
}

// Validate checks all fields and collects all errors.
func (i ListMessagesInput) Validate() error {
	var errs []domain.FieldError

	if i.RoomID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "room_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchMessagesInput holds the parameters for full-text message search.
type SearchMessagesInput struct {
	RoomID uuid.UUID
	Query  string
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i SearchMessagesInput) Validate() error {
	var errs []domain.FieldError

	if i.RoomID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "room_id", Message: "required"})
	}
	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
