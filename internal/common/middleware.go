package common

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// SessionCookieName is the cookie the login handler sets. API clients can
// send the same token as "Authorization: Bearer <token>" instead.
const SessionCookieName = "bloom_session"

// SessionValidator is how the middleware asks the auth gate whether a token
// is still good. Implemented by the auth service, which also checks its
// revocation set so logout takes effect immediately.
type SessionValidator interface {
	ValidateSession(token string) (*Claims, error)
}

// context keys for the authenticated identity
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextToken    = "session_token"
)

// RequireAuth guards a route. It extracts the bearer token or session
// cookie, validates it, and injects user identity into the request context.
// Protected handlers behind it can assume UserIDFromContext succeeds.
func RequireAuth(sessions SessionValidator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractToken(r)
		if tokenString == "" {
			unauthenticated(w)
			return
		}

		claims, err := sessions.ValidateSession(tokenString)
		if err != nil {
			unauthenticated(w)
			return
		}

		//inject user identity into context
		ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
		ctx = context.WithValue(ctx, ContextUsername, claims.Username)
		ctx = context.WithValue(ctx, ContextToken, tokenString)

		next(w, r.WithContext(ctx))
	}
}

func extractToken(r *http.Request) string {
	// Authorization: Bearer <token> wins over the cookie
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": ErrUnauthenticated.Error()})
}

// UserIDFromContext returns the authenticated user id set by RequireAuth.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(ContextUserID).(uint64)
	return id, ok
}

// TokenFromContext returns the raw session token set by RequireAuth.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ContextToken).(string)
	return token, ok
}
