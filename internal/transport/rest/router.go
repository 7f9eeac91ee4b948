package rest

import (
	"net/http"

	"github.com/mhladky/teamchat-backend/internal/transport/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth    *AuthHandler
	Room    *RoomHandler
	Topic   *TopicHandler
	Message *MessageHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP route table. Route-level auth is not enforced
// here: the Auth middleware resolves the caller and the services reject
// anonymous access where it matters.
func NewRouter(h Handlers, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/v1/me", h.Auth.Me)

	mux.HandleFunc("POST /api/v1/rooms", h.Room.Create)
	mux.HandleFunc("GET /api/v1/rooms", h.Room.List)
	mux.HandleFunc("POST /api/v1/rooms/direct", h.Room.Direct)
	mux.HandleFunc("POST /api/v1/rooms/{roomID}/members", h.Room.AddMember)

	mux.HandleFunc("POST /api/v1/rooms/{roomID}/messages", h.Message.Send)
	mux.HandleFunc("GET /api/v1/rooms/{roomID}/messages", h.Message.ListByRoom)
	mux.HandleFunc("GET /api/v1/rooms/{roomID}/messages/search", h.Message.Search)

	mux.HandleFunc("POST /api/v1/topics", h.Topic.Create)
	mux.HandleFunc("GET /api/v1/topics/{topicID}", h.Topic.Get)
	mux.HandleFunc("GET /api/v1/rooms/{roomID}/topics", h.Topic.ListByRoom)
	mux.HandleFunc("POST /api/v1/topics/{topicID}/close", h.Topic.Close)
	mux.HandleFunc("POST /api/v1/topics/{topicID}/reopen", h.Topic.Reopen)
	mux.HandleFunc("PATCH /api/v1/topics/{topicID}/status", h.Topic.SetStatus)
	mux.HandleFunc("POST /api/v1/topics/{topicID}/messages", h.Topic.Assign)
	mux.HandleFunc("GET /api/v1/topics/{topicID}/messages", h.Message.ListByTopic)
	mux.HandleFunc("DELETE /api/v1/messages/{messageID}/topic", h.Topic.Unassign)
	mux.HandleFunc("POST /api/v1/topics/{topicID}/draft", h.Topic.Draft)

	return mw(mux)
}
