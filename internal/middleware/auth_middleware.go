package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/domain"
)

type contextKey string

const (
	ContextKeyUserId contextKey = "user_id"
	ContextKeyToken  contextKey = "token"

	// TokenHeader carries the opaque session token on authenticated calls.
	TokenHeader = "X-Token"
)

type AuthMiddleWare struct {
	sessions domain.SessionStore
}

// NewAuthMiddleware creates middleware that resolves the X-Token header to a
// user id through the session store on every authenticated request.
func NewAuthMiddleware(sessions domain.SessionStore) *AuthMiddleWare {
	return &AuthMiddleWare{sessions: sessions}
}

// RequireAuth rejects requests whose token is missing, unknown or expired
// with 401, and injects the resolved user id and raw token into the request
// context otherwise.
func (m *AuthMiddleWare) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}

		userID, err := m.sessions.Get(r.Context(), token)
		if err != nil {
			http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
			return
		}
		if userID == uuid.Nil {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUserId, userID)
		ctx = context.WithValue(ctx, ContextKeyToken, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FlexibleAuth resolves the token when present but lets the request through
// either way. Handlers behind it see uuid.Nil for anonymous callers; public
// files stay readable without a session.
func (m *AuthMiddleWare) FlexibleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := m.sessions.Get(r.Context(), token)
		if err != nil || userID == uuid.Nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUserId, userID)
		ctx = context.WithValue(ctx, ContextKeyToken, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user id, or uuid.Nil when the
// request carried no valid session.
func UserFromContext(ctx context.Context) uuid.UUID {
	if userID, ok := ctx.Value(ContextKeyUserId).(uuid.UUID); ok {
		return userID
	}
	return uuid.Nil
}
