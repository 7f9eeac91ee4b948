// Package room implements the Room repository using PostgreSQL.
// Direct rooms are deduplicated by the unique direct_key column.
package room

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mhladky/teamchat-backend/internal/adapter/postgres"
	"github.com/mhladky/teamchat-backend/internal/domain"
)

// Repo provides room persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new room repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO rooms (name, is_direct, direct_key)
VALUES ($1, $2, $3)
RETURNING id, name, is_direct, direct_key, created_at`

const getByIDSQL = `
SELECT id, name, is_direct, direct_key, created_at
FROM rooms
WHERE id = $1`

const getByDirectKeySQL = `
SELECT id, name, is_direct, direct_key, created_at
FROM rooms
WHERE direct_key = $1`

const listForUserSQL = `
SELECT r.id, r.name, r.is_direct, r.direct_key, r.created_at
FROM rooms r
JOIN room_members rm ON rm.room_id = r.id
WHERE rm.user_id = $1
ORDER BY r.created_at`

const addMemberSQL = `
INSERT INTO room_members (room_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const isMemberSQL = `
SELECT EXISTS (
    SELECT 1 FROM room_members WHERE room_id = $1 AND user_id = $2
)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a room by primary key.
// Returns domain.ErrNotFound if the room does not exist.
func (r *Repo) GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	room, err := scanRoom(querier.QueryRow(ctx, getByIDSQL, roomID))
	if err != nil {
		return nil, postgres.MapError(err, "room", roomID)
	}

	return room, nil
}

// GetByDirectKey returns the direct room with the given key.
// Returns domain.ErrNotFound if no such room exists.
func (r *Repo) GetByDirectKey(ctx context.Context, key string) (*domain.Room, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	room, err := scanRoom(querier.QueryRow(ctx, getByDirectKeySQL, key))
	if err != nil {
		return nil, postgres.MapError(err, "room", uuid.Nil)
	}

	return room, nil
}

// ListForUser returns all rooms the user is a member of, oldest first.
// Returns an empty slice (not nil) when the user has no rooms.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Room, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list rooms for user: %w", err)
	}
	defer rows.Close()

	var result []*domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("list rooms for user: %w", err)
		}
		result = append(result, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms for user: %w", err)
	}

	if result == nil {
		result = []*domain.Room{}
	}

	return result, nil
}

// IsMember reports whether the user is a member of the room.
func (r *Repo) IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, isMemberSQL, roomID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check room membership: %w", err)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a room and returns the persisted domain.Room.
// Returns domain.ErrAlreadyExists when a direct room with the same
// direct_key already exists.
func (r *Repo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, room.Name, room.Direct, ptrStringToPgText(room.DirectKey))

	created, err := scanRoom(row)
	if err != nil {
		return nil, postgres.MapError(err, "room", uuid.Nil)
	}

	return created, nil
}

// AddMember adds a user to a room. Idempotent (ON CONFLICT DO NOTHING).
// Returns domain.ErrNotFound if the room or user does not exist.
func (r *Repo) AddMember(ctx context.Context, roomID, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, addMemberSQL, roomID, userID); err != nil {
		return postgres.MapError(err, "room_member", roomID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var (
		room      domain.Room
		directKey pgtype.Text
	)

	if err := row.Scan(&room.ID, &room.Name, &room.Direct, &directKey, &room.CreatedAt); err != nil {
		return nil, err
	}

	if directKey.Valid {
		room.DirectKey = &directKey.String
	}

	return &room, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
