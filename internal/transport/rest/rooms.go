package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

// roomService defines the minimal interface needed by RoomHandler.
type roomService interface {
	CreateTeamRoom(ctx context.Context, name string) (*domain.Room, error)
	GetOrCreateDirectRoom(ctx context.Context, peerID uuid.UUID) (*domain.Room, error)
	ListRoomsForUser(ctx context.Context) ([]*domain.Room, error)
	AddMember(ctx context.Context, roomID, newMemberID uuid.UUID) error
}

// RoomHandler serves room endpoints.
type RoomHandler struct {
	svc roomService
	log *slog.Logger
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(svc roomService, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{svc: svc, log: logger.With("handler", "room")}
}

type createRoomRequest struct {
	Name string `json:"name"`
}

type directRoomRequest struct {
	PeerID uuid.UUID `json:"peerId"`
}

type addMemberRequest struct {
	UserID uuid.UUID `json:"userId"`
}

type roomResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Direct bool   `json:"direct"`
}

// Create handles POST /api/v1/rooms.
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.svc.CreateTeamRoom(r.Context(), req.Name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRoomResponse(room))
}

// Direct handles POST /api/v1/rooms/direct. The call is idempotent: the
// same pair of users always resolves to the same room.
func (h *RoomHandler) Direct(w http.ResponseWriter, r *http.Request) {
	var req directRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.svc.GetOrCreateDirectRoom(r.Context(), req.PeerID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRoomResponse(room))
}

// List handles GET /api/v1/rooms.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.svc.ListRoomsForUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toRoomResponse(room))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddMember handles POST /api/v1/rooms/{roomID}/members.
func (h *RoomHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "roomID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.AddMember(r.Context(), roomID, req.UserID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toRoomResponse(room *domain.Room) roomResponse {
	return roomResponse{
		ID:     room.ID.String(),
		Name:   room.Name,
		Direct: room.Direct,
	}
}
