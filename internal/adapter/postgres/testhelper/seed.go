package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a dummy password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		FirstName:    "Test",
		LastName:     "User " + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
		CreatedAt:    now,
		LastSeenAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, first_name, last_name, password_hash, created_at, last_seen_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt, user.LastSeenAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRoom creates a team room and adds the given users as members.
// Returns a filled domain.Room.
func SeedRoom(t *testing.T, pool *pgxpool.Pool, memberIDs ...uuid.UUID) domain.Room {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	room := domain.Room{
		ID:        uuid.New(),
		Name:      "room-" + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO rooms (id, name, is_direct, created_at) VALUES ($1, $2, FALSE, $3)`,
		room.ID, room.Name, room.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoom insert room: %v", err)
	}

	for _, userID := range memberIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO room_members (room_id, user_id) VALUES ($1, $2)`,
			room.ID, userID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRoom insert room_member: %v", err)
		}
	}

	return room
}

// SeedTopic creates an OPEN topic in a room.
// Returns a filled domain.Topic (derived stats unset).
func SeedTopic(t *testing.T, pool *pgxpool.Pool, roomID, createdBy uuid.UUID) domain.Topic {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:        uuid.New(),
		RoomID:    roomID,
		CreatedBy: createdBy,
		Title:     "topic-" + suffix,
		Status:    domain.TopicStatusOpen,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, room_id, created_by, title, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		topic.ID, topic.RoomID, topic.CreatedBy, topic.Title, topic.Status.String(), topic.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}

// SeedMessage creates a message in a room with no topic binding.
// Returns a filled domain.Message (SenderName unset).
func SeedMessage(t *testing.T, pool *pgxpool.Pool, roomID, senderID uuid.UUID, content string) domain.Message {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	msg := domain.Message{
		ID:       uuid.New(),
		RoomID:   roomID,
		SenderID: senderID,
		Content:  content,
		SentAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO messages (id, room_id, sender_id, content, sent_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.RoomID, msg.SenderID, msg.Content, msg.SentAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert message: %v", err)
	}

	return msg
}
