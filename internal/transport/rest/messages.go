package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
	"github.com/mhladky/teamchat-backend/internal/service/message"
)

// messageService defines the minimal interface needed by MessageHandler.
type messageService interface {
	SendMessage(ctx context.Context, input message.SendMessageInput) (*domain.Message, error)
	ListRoomMessages(ctx context.Context, input message.ListMessagesInput) ([]*domain.Message, error)
	ListTopicMessages(ctx context.Context, topicID uuid.UUID) ([]*domain.Message, error)
	SearchMessages(ctx context.Context, input message.SearchMessagesInput) ([]*domain.Message, error)
}

// MessageHandler serves message endpoints.
type MessageHandler struct {
	svc messageService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "message")}
}

type sendMessageRequest struct {
	Content string     `json:"content"`
	Tags    []string   `json:"tags,omitempty"`
	TopicID *uuid.UUID `json:"topicId,omitempty"`
}

type messageResponse struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"roomId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	TopicID    *string   `json:"topicId,omitempty"`
	SentAt     time.Time `json:"sentAt"`
}

// Send handles POST /api/v1/rooms/{roomID}/messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "roomID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.svc.SendMessage(r.Context(), message.SendMessageInput{
		RoomID:  roomID,
		Content: req.Content,
		Tags:    req.Tags,
		TopicID: req.TopicID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(msg))
}

// ListByRoom handles GET /api/v1/rooms/{roomID}/messages?unassigned=true&tag=bug&limit=50.
func (h *MessageHandler) ListByRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "roomID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	q := r.URL.Query()
	input := message.ListMessagesInput{
		RoomID:         roomID,
		UnassignedOnly: q.Get("unassigned") == "true",
		Tag:            q.Get("tag"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = limit
	}

	messages, err := h.svc.ListRoomMessages(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponses(messages))
}

// ListByTopic handles GET /api/v1/topics/{topicID}/messages.
func (h *MessageHandler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathUUID(r, "topicID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	messages, err := h.svc.ListTopicMessages(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponses(messages))
}

// Search handles GET /api/v1/rooms/{roomID}/messages/search?q=deploy&limit=20.
func (h *MessageHandler) Search(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "roomID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	q := r.URL.Query()
	input := message.SearchMessagesInput{
		RoomID: roomID,
		Query:  q.Get("q"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = limit
	}

	messages, err := h.svc.SearchMessages(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponses(messages))
}

func toMessageResponse(m *domain.Message) messageResponse {
	resp := messageResponse{
		ID:         m.ID.String(),
		RoomID:     m.RoomID.String(),
		SenderID:   m.SenderID.String(),
		SenderName: m.SenderName,
		Content:    m.Content,
		Tags:       m.Tags,
		SentAt:     m.SentAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if m.TopicID != nil {
		id := m.TopicID.String()
		resp.TopicID = &id
	}
	return resp
}

func toMessageResponses(messages []*domain.Message) []messageResponse {
	resp := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, toMessageResponse(m))
	}
	return resp
}
