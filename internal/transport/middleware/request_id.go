package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/pkg/ctxutil"
)

// RequestID reuses the caller's X-Request-Id header or mints a UUID,
// stores it in the context, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
