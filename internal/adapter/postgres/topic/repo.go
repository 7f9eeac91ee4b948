// Package topic implements the Topic repository using PostgreSQL.
// Topics are triage units inside a room; message_count and last_activity_at
// are derived from the messages table on read.
package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mhladky/teamchat-backend/internal/adapter/postgres"
	"github.com/mhladky/teamchat-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO topics (room_id, created_by, title, status)
VALUES ($1, $2, $3, $4)
RETURNING id, room_id, created_by, title, status, created_at, closed_at`

const getByIDSQL = `
SELECT
    t.id, t.room_id, t.created_by, t.title, t.status, t.created_at, t.closed_at,
    count(m.id) AS message_count,
    coalesce(max(m.sent_at), t.created_at) AS last_activity_at
FROM topics t
LEFT JOIN messages m ON m.topic_id = t.id
WHERE t.id = $1
GROUP BY t.id`

const getByIDForUpdateSQL = `
SELECT id, room_id, created_by, title, status, created_at, closed_at
FROM topics
WHERE id = $1
FOR UPDATE`

const setStatusSQL = `
UPDATE topics
SET status = $2, closed_at = $3
WHERE id = $1
RETURNING id, room_id, created_by, title, status, created_at, closed_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key with derived message stats.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopicWithStats(querier.QueryRow(ctx, getByIDSQL, topicID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	return t, nil
}

// GetByIDForUpdate returns a topic by primary key with a row lock (FOR UPDATE).
// Must be called inside a transaction; concurrent callers serialize on the row.
// The derived stats are not populated.
func (r *Repo) GetByIDForUpdate(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(querier.QueryRow(ctx, getByIDForUpdateSQL, topicID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	return t, nil
}

// List returns topics of a room ordered by creation time descending.
// An optional status narrows the result. Returns an empty slice (not nil)
// when the room has no matching topics.
func (r *Repo) List(ctx context.Context, roomID uuid.UUID, status *domain.TopicStatus) ([]*domain.Topic, error) {
	builder := squirrel.
		Select(
			"t.id", "t.room_id", "t.created_by", "t.title", "t.status", "t.created_at", "t.closed_at",
			"count(m.id) AS message_count",
			"coalesce(max(m.sent_at), t.created_at) AS last_activity_at",
		).
		From("topics t").
		LeftJoin("messages m ON m.topic_id = t.id").
		Where(squirrel.Eq{"t.room_id": roomID}).
		GroupBy("t.id").
		OrderBy("t.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		builder = builder.Where(squirrel.Eq{"t.status": status.String()})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	result, err := scanTopicsWithStats(rows)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic and returns the persisted domain.Topic.
// Returns domain.ErrNotFound if the room or creator does not exist.
func (r *Repo) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		topic.RoomID, topic.CreatedBy, topic.Title, topic.Status.String())

	t, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	return t, nil
}

// SetStatus updates the topic status and closed_at timestamp.
// closedAt is nil for OPEN and the close time for CLOSED.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) SetStatus(ctx context.Context, topicID uuid.UUID, status domain.TopicStatus, closedAt *time.Time) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, setStatusSQL, topicID, status.String(), ptrTimeToPgTimestamptz(closedAt))

	t, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	return t, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanTopic scans the base topic columns (no derived stats).
func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var (
		t        domain.Topic
		status   string
		closedAt pgtype.Timestamptz
	)

	if err := row.Scan(&t.ID, &t.RoomID, &t.CreatedBy, &t.Title, &status, &t.CreatedAt, &closedAt); err != nil {
		return nil, err
	}

	t.Status = domain.TopicStatus(status)
	if closedAt.Valid {
		t.ClosedAt = &closedAt.Time
	}

	return &t, nil
}

// scanTopicWithStats scans the base columns plus message_count and last_activity_at.
func scanTopicWithStats(row pgx.Row) (*domain.Topic, error) {
	var (
		t        domain.Topic
		status   string
		closedAt pgtype.Timestamptz
	)

	err := row.Scan(&t.ID, &t.RoomID, &t.CreatedBy, &t.Title, &status, &t.CreatedAt, &closedAt,
		&t.MessageCount, &t.LastActivityAt)
	if err != nil {
		return nil, err
	}

	t.Status = domain.TopicStatus(status)
	if closedAt.Valid {
		t.ClosedAt = &closedAt.Time
	}

	return &t, nil
}

// scanTopicsWithStats scans multiple rows of the stats projection.
func scanTopicsWithStats(rows pgx.Rows) ([]*domain.Topic, error) {
	var result []*domain.Topic
	for rows.Next() {
		t, err := scanTopicWithStats(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Topic{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrTimeToPgTimestamptz converts a *time.Time to pgtype.Timestamptz (nil -> NULL).
func ptrTimeToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
