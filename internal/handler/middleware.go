package handler

import (
	"context"
	"net/http"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/port"
)

type contextKey string

const sessionContextKey contextKey = "session"

// RequireSession rejects requests when no active session is stored. The
// stored identity (not a request credential) is what downstream calls use.
func RequireSession(sessions port.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.Get()
			if sess == nil {
				writeError(w, http.StatusUnauthorized, "Not logged in")
				return
			}
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retrieves the session placed by RequireSession.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*domain.Session)
	return sess, ok
}
