package middleware

import (
	"context"
	"net/http"

	"eventman/internal/core/model"
	"eventman/internal/session"

	"github.com/rs/zerolog"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session_token"

type contextKey string

const userContextKey contextKey = "session_user"

type AuthMiddleware struct {
	sessions *session.Manager
	logger   zerolog.Logger
}

func NewAuthMiddleware(sessions *session.Manager, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger.With().Str("middleware", "auth").Logger(),
	}
}

// Authenticate resolves the session cookie and, when it maps to a live
// session, attaches the user projection to the request context. It never
// denies; public handlers use the projection only for personalization.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, ok, err := m.sessions.Get(cookie.Value)
		if err != nil {
			// A session-store failure downgrades the request to anonymous.
			m.logger.Error().Err(err).Msg("session lookup failed")
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth guards protected routes. Without a live session it sends a
// single redirect to /login and the wrapped handler never runs.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom returns the session user attached by Authenticate, if any.
func UserFrom(ctx context.Context) (model.Projection, bool) {
	user, ok := ctx.Value(userContextKey).(model.Projection)
	return user, ok
}
