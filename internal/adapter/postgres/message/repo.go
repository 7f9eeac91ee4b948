// Package message implements the Message repository using PostgreSQL.
// Sender names are joined from users and tags aggregated from the
// message_tags M2M table on every read.
package message

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mhladky/teamchat-backend/internal/adapter/postgres"
	"github.com/mhladky/teamchat-backend/internal/domain"
)

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// messageColumns is the shared projection for all message reads.
const messageColumns = `
    m.id, m.room_id, m.sender_id, u.username AS sender_name,
    m.content, m.topic_id, m.sent_at,
    coalesce(array_agg(t.name ORDER BY t.name) FILTER (WHERE t.name IS NOT NULL), '{}') AS tags`

const messageJoins = `
FROM messages m
JOIN users u ON u.id = m.sender_id
LEFT JOIN message_tags mt ON mt.message_id = m.id
LEFT JOIN tags t ON t.id = mt.tag_id`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO messages (room_id, sender_id, topic_id, content)
VALUES ($1, $2, $3, $4)
RETURNING id, sent_at`

const getByIDSQL = `
SELECT` + messageColumns + messageJoins + `
WHERE m.id = $1
GROUP BY m.id, u.username`

const getByIDsSQL = `
SELECT` + messageColumns + messageJoins + `
WHERE m.id = ANY($1::uuid[])
GROUP BY m.id, u.username
ORDER BY m.sent_at`

const listByTopicSQL = `
SELECT` + messageColumns + messageJoins + `
WHERE m.topic_id = $1
GROUP BY m.id, u.username
ORDER BY m.sent_at`

const assignTopicSQL = `
UPDATE messages
SET topic_id = $2
WHERE id = ANY($1::uuid[])`

const clearTopicSQL = `
UPDATE messages
SET topic_id = NULL
WHERE id = $1`

const upsertTagSQL = `
INSERT INTO tags (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`

const linkTagSQL = `
INSERT INTO message_tags (message_id, tag_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a message by primary key.
// Returns domain.ErrNotFound if the message does not exist.
func (r *Repo) GetByID(ctx context.Context, messageID uuid.UUID) (*domain.Message, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMessage(querier.QueryRow(ctx, getByIDSQL, messageID))
	if err != nil {
		return nil, postgres.MapError(err, "message", messageID)
	}

	return m, nil
}

// GetByIDs returns messages for multiple IDs ordered by sent_at.
// Missing IDs are silently absent from the result; callers that need
// all-or-nothing semantics must compare lengths.
func (r *Repo) GetByIDs(ctx context.Context, messageIDs []uuid.UUID) ([]*domain.Message, error) {
	if len(messageIDs) == 0 {
		return []*domain.Message{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, messageIDs)
	if err != nil {
		return nil, fmt.Errorf("get messages by ids: %w", err)
	}
	defer rows.Close()

	result, err := scanMessages(rows)
	if err != nil {
		return nil, fmt.Errorf("get messages by ids: %w", err)
	}

	return result, nil
}

// ListByTopic returns all messages bound to a topic ordered by sent_at ascending.
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.Message, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByTopicSQL, topicID)
	if err != nil {
		return nil, fmt.Errorf("list messages by topic: %w", err)
	}
	defer rows.Close()

	result, err := scanMessages(rows)
	if err != nil {
		return nil, fmt.Errorf("list messages by topic: %w", err)
	}

	return result, nil
}

// ListByRoom returns messages of a room ordered by sent_at ascending.
// Filters: unassignedOnly keeps messages with no topic; tag keeps messages
// carrying the tag; limit caps the result when > 0.
func (r *Repo) ListByRoom(ctx context.Context, roomID uuid.UUID, filter domain.MessageFilter) ([]*domain.Message, error) {
	builder := squirrel.
		Select(
			"m.id", "m.room_id", "m.sender_id", "u.username AS sender_name",
			"m.content", "m.topic_id", "m.sent_at",
			"coalesce(array_agg(t.name ORDER BY t.name) FILTER (WHERE t.name IS NOT NULL), '{}') AS tags",
		).
		From("messages m").
		Join("users u ON u.id = m.sender_id").
		LeftJoin("message_tags mt ON mt.message_id = m.id").
		LeftJoin("tags t ON t.id = mt.tag_id").
		Where(squirrel.Eq{"m.room_id": roomID}).
		GroupBy("m.id", "u.username").
		OrderBy("m.sent_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.UnassignedOnly {
		builder = builder.Where("m.topic_id IS NULL")
	}
	if filter.Tag != "" {
		builder = builder.Having(
			"bool_or(t.name = ?)", filter.Tag,
		)
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list messages query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages by room: %w", err)
	}
	defer rows.Close()

	result, err := scanMessages(rows)
	if err != nil {
		return nil, fmt.Errorf("list messages by room: %w", err)
	}

	return result, nil
}

// Search returns messages of a room whose content matches the query
// (case-insensitive substring), newest first.
func (r *Repo) Search(ctx context.Context, roomID uuid.UUID, query string, limit int) ([]*domain.Message, error) {
	builder := squirrel.
		Select(
			"m.id", "m.room_id", "m.sender_id", "u.username AS sender_name",
			"m.content", "m.topic_id", "m.sent_at",
			"coalesce(array_agg(t.name ORDER BY t.name) FILTER (WHERE t.name IS NOT NULL), '{}') AS tags",
		).
		From("messages m").
		Join("users u ON u.id = m.sender_id").
		LeftJoin("message_tags mt ON mt.message_id = m.id").
		LeftJoin("tags t ON t.id = mt.tag_id").
		Where(squirrel.Eq{"m.room_id": roomID}).
		Where(squirrel.ILike{"m.content": "%" + query + "%"}).
		GroupBy("m.id", "u.username").
		OrderBy("m.sent_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search messages query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search messages: %w", err)
	}
	defer rows.Close()

	result, err := scanMessages(rows)
	if err != nil {
		return nil, fmt.Errorf("search messages: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a message and its tag links, then returns the persisted
// message via GetByID. Tag names are upserted into the tags table.
// Returns domain.ErrNotFound if the room, sender or topic does not exist.
func (r *Repo) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		id     uuid.UUID
		sentAt pgtype.Timestamptz
	)
	err := querier.QueryRow(ctx, createSQL,
		msg.RoomID, msg.SenderID, msg.TopicID, msg.Content).Scan(&id, &sentAt)
	if err != nil {
		return nil, postgres.MapError(err, "message", uuid.Nil)
	}

	for _, tag := range msg.Tags {
		var tagID uuid.UUID
		if err := querier.QueryRow(ctx, upsertTagSQL, tag).Scan(&tagID); err != nil {
			return nil, postgres.MapError(err, "tag", uuid.Nil)
		}
		if _, err := querier.Exec(ctx, linkTagSQL, id, tagID); err != nil {
			return nil, postgres.MapError(err, "message_tag", id)
		}
	}

	return r.GetByID(ctx, id)
}

// AssignTopic binds a batch of messages to a topic in one statement.
// Returns the number of rows updated.
func (r *Repo) AssignTopic(ctx context.Context, messageIDs []uuid.UUID, topicID uuid.UUID) (int, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, assignTopicSQL, messageIDs, topicID)
	if err != nil {
		return 0, postgres.MapError(err, "message", topicID)
	}

	return int(tag.RowsAffected()), nil
}

// ClearTopic unbinds a single message from its topic.
// Not an error if the message was already unbound (0 rows affected is OK).
func (r *Repo) ClearTopic(ctx context.Context, messageID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, clearTopicSQL, messageID); err != nil {
		return postgres.MapError(err, "message", messageID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var (
		m       domain.Message
		topicID pgtype.UUID
	)

	err := row.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.SenderName,
		&m.Content, &topicID, &m.SentAt, &m.Tags)
	if err != nil {
		return nil, err
	}

	if topicID.Valid {
		id := uuid.UUID(topicID.Bytes)
		m.TopicID = &id
	}

	return &m, nil
}

func scanMessages(rows pgx.Rows) ([]*domain.Message, error) {
	var result []*domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Message{}
	}

	return result, nil
}
