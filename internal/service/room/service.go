// Package room implements team room management and direct (1:1) room
// deduplication via a canonical direct key.
package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

type roomRepo interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	GetByDirectKey(ctx context.Context, key string) (*domain.Room, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Room, error)
	AddMember(ctx context.Context, roomID, userID uuid.UUID) error
	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MaxRoomNameLen is the maximum room name length in characters.
const MaxRoomNameLen = 100

// Service provides room operations.
type Service struct {
	rooms roomRepo
	users userRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Room service.
func NewService(log *slog.Logger, rooms roomRepo, users userRepo, tx txManager) *Service {
	return &Service{
		rooms: rooms,
		users: users,
		tx:    tx,
		log:   log.With("service", "room"),
	}
}

// CreateTeamRoom creates a named room with the creator as its first member.
func (s *Service) CreateTeamRoom(ctx context.Context, name string) (*domain.Room, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if len([]rune(name)) > MaxRoomNameLen {
		return nil, domain.NewValidationError("name", "max 100 characters")
	}

	var room *domain.Room
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		room, createErr = s.rooms.Create(txCtx, &domain.Room{Name: name})
		if createErr != nil {
			return fmt.Errorf("create room: %w", createErr)
		}
		if err := s.rooms.AddMember(txCtx, room.ID, userID); err != nil {
			return fmt.Errorf("add creator: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "room created",
		slog.String("room_id", room.ID.String()),
		slog.String("name", name),
	)

	return room, nil
}

// GetOrCreateDirectRoom returns the 1:1 room between the caller and peer,
// creating it on first use. The room is keyed by the sorted pair of user
// IDs, so both directions resolve to the same room.
func (s *Service) GetOrCreateDirectRoom(ctx context.Context, peerID uuid.UUID) (*domain.Room, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if peerID == uuid.Nil {
		return nil, domain.NewValidationError("peer_id", "required")
	}
	if peerID == userID {
		return nil, domain.NewValidationError("peer_id", "cannot open a direct room with yourself")
	}

	if _, err := s.users.GetByID(ctx, peerID); err != nil {
		return nil, fmt.Errorf("get peer: %w", err)
	}

	key := domain.DirectKey(userID, peerID)

	room, err := s.rooms.GetByDirectKey(ctx, key)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		room, createErr = s.rooms.Create(txCtx, &domain.Room{
			Name:      "direct",
			Direct:    true,
			DirectKey: &key,
		})
		if createErr != nil {
			return fmt.Errorf("create direct room: %w", createErr)
		}
		if err := s.rooms.AddMember(txCtx, room.ID, userID); err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		if err := s.rooms.AddMember(txCtx, room.ID, peerID); err != nil {
			return fmt.Errorf("add peer: %w", err)
		}
		return nil
	})
	if err != nil {
		// Lost the race to a concurrent call: the unique direct_key
		// insert failed, the winner's room already exists.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.rooms.GetByDirectKey(ctx, key)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "direct room created",
		slog.String("room_id", room.ID.String()),
	)

	return room, nil
}

// ListRoomsForUser returns all rooms the caller is a member of.
func (s *Service) ListRoomsForUser(ctx context.Context) ([]*domain.Room, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rooms, err := s.rooms.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	return rooms, nil
}

// AddMember adds another user to a room the caller belongs to.
// Adding an existing member is a no-op.
func (s *Service) AddMember(ctx context.Context, roomID, newMemberID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if roomID == uuid.Nil {
		return domain.NewValidationError("room_id", "required")
	}
	if newMemberID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if room.Direct {
		return domain.NewValidationError("room_id", "cannot add members to a direct room")
	}

	member, err := s.rooms.IsMember(ctx, roomID, userID)
	if err != nil {
		return err
	}
	if !member {
		return domain.ErrUnauthorized
	}

	if _, err := s.users.GetByID(ctx, newMemberID); err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if err := s.rooms.AddMember(ctx, roomID, newMemberID); err != nil {
		return fmt.Errorf("add member: %w", err)
	}

	s.log.InfoContext(ctx, "member added",
		slog.String("room_id", roomID.String()),
		slog.String("user_id", newMemberID.String()),
	)

	return nil
}
