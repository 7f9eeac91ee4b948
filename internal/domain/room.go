package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room is a chat room. Direct rooms hold exactly two members and carry a
// deterministic DirectKey so the same pair always resolves to the same room.
type Room struct {
	ID        uuid.UUID
	Name      string
	Direct    bool
	DirectKey *string
	CreatedAt time.Time
}

// DirectKey builds the canonical key for a direct room between two users:
// the two IDs joined with "_", smaller first.
func DirectKey(a, b uuid.UUID) string {
	if a.String() < b.String() {
		return a.String() + "_" + b.String()
	}
	return b.String() + "_" + a.String()
}
