package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single chat message in a room. TopicID is set while the
// message is bound to a topic and nil otherwise. SenderName is joined from
// the users table on read; it is not a stored column of messages.
type Message struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	SenderID   uuid.UUID
	SenderName string
	Content    string
	Tags       []string
	TopicID    *uuid.UUID
	SentAt     time.Time
}

// MessageFilter narrows room message listings.
// The zero value means "all messages of the room, oldest first, no cap".
type MessageFilter struct {
	UnassignedOnly bool
	Tag            string
	Limit          int
}
