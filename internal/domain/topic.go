package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TopicStatus represents the lifecycle state of a topic.
type TopicStatus string

const (
	TopicStatusOpen   TopicStatus = "OPEN"
	TopicStatusClosed TopicStatus = "CLOSED"
)

func (s TopicStatus) String() string { return string(s) }

func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusOpen, TopicStatusClosed:
		return true
	}
	return false
}

// ParseTopicStatus parses a status literal (case-insensitive, trimmed).
// Returns ErrInvalidStatus for anything that is not OPEN or CLOSED.
func ParseTopicStatus(raw string) (TopicStatus, error) {
	s := TopicStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidStatus)
	}
	return s, nil
}

// MaxTopicTitleLen is the maximum length of a topic title in characters.
const MaxTopicTitleLen = 160

// Topic is a named discussion thread scoped to a room.
// MessageCount and LastActivityAt are derived by the repository from the
// topic's bound messages; they are never stored.
type Topic struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	CreatedBy uuid.UUID
	Title     string
	Status    TopicStatus
	CreatedAt time.Time
	ClosedAt  *time.Time

	MessageCount   int
	LastActivityAt time.Time
}

// IsClosed reports whether the topic is in the CLOSED state.
func (t *Topic) IsClosed() bool { return t.Status == TopicStatusClosed }
