package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopics(ctx context.Context, input topic.ListTopicsInput) ([]*domain.Topic, error)
	CloseTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ReopenTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	AssignMessages(ctx context.Context, input topic.AssignMessagesInput) (*domain.Topic, error)
	UnassignMessage(ctx context.Context, messageID uuid.UUID) error
}

// draftService defines the minimal interface for issue draft generation.
type draftService interface {
	GenerateDraft(ctx context.Context, topicID uuid.UUID) (*domain.IssueDraft, error)
}

// TopicHandler serves topic endpoints.
type TopicHandler struct {
	svc    topicService
	drafts draftService
	log    *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, drafts draftService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, drafts: drafts, log: logger.With("handler", "topic")}
}

type createTopicRequest struct {
	RoomID uuid.UUID `json:"roomId"`
	Title  string    `json:"title"`
}

type assignMessagesRequest struct {
	MessageIDs []uuid.UUID `json:"messageIds"`
}

type topicResponse struct {
	ID             string     `json:"id"`
	RoomID         string     `json:"roomId"`
	Title          string     `json:"title"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	ClosedAt       *time.Time `json:"closedAt,omitempty"`
	MessageCount   int        `json:"messageCount"`
	LastActivityAt time.Time  `json:"lastActivityAt"`
}

type draftResponse struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

// Create handles POST /api/v1/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{
		RoomID: req.RoomID,
		Title:  req.Title,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(t))
}

// Get handles GET /api/v1/topics/{topicID}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathUUID(r, "topicID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	t, err := h.svc.GetTopic(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// ListByRoom handles GET /api/v1/rooms/{roomID}/topics?status=OPEN.
func (h *TopicHandler) ListByRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "roomID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	input := topic.ListTopicsInput{RoomID: roomID}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseTopicStatus(raw)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.Status = &status
	}

	topics, err := h.svc.ListTopics(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		resp = append(resp, toTopicResponse(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Close handles POST /api/v1/topics/{topicID}/close.
func (h *TopicHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.CloseTopic)
}

// Reopen handles POST /api/v1/topics/{topicID}/reopen.
func (h *TopicHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.ReopenTopic)
}

func (h *TopicHandler) setStatus(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error),
) {
	topicID, err := pathUUID(r, "topicID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	t, err := op(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles PATCH /api/v1/topics/{topicID}/status. It accepts any
// casing of OPEN/CLOSED and rejects everything else.
func (h *TopicHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathUUID(r, "topicID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := domain.ParseTopicStatus(req.Status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	op := h.svc.ReopenTopic
	if status == domain.TopicStatusClosed {
		op = h.svc.CloseTopic
	}

	t, err := op(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Assign handles POST /api/v1/topics/{topicID}/messages. The batch either
// binds completely or not at all.
func (h *TopicHandler) Assign(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathUUID(r, "topicID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req assignMessagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.AssignMessages(r.Context(), topic.AssignMessagesInput{
		TopicID:    topicID,
		MessageIDs: req.MessageIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Unassign handles DELETE /api/v1/messages/{messageID}/topic.
func (h *TopicHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	messageID, err := pathUUID(r, "messageID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	if err := h.svc.UnassignMessage(r.Context(), messageID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Draft handles POST /api/v1/topics/{topicID}/draft.
func (h *TopicHandler) Draft(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathUUID(r, "topicID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	d, err := h.drafts.GenerateDraft(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, draftResponse{
		Title:  d.Title,
		Body:   d.Body,
		Labels: d.Labels,
	})
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:             t.ID.String(),
		RoomID:         t.RoomID.String(),
		Title:          t.Title,
		Status:         t.Status.String(),
		CreatedAt:      t.CreatedAt,
		ClosedAt:       t.ClosedAt,
		MessageCount:   t.MessageCount,
		LastActivityAt: t.LastActivityAt,
	}
}
