package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"fitvibe/internal/apperr"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserID returns the authenticated user id placed into the request
// context by RequireAuth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// TokenParser validates a bearer token and returns the user id.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// RequireAuth guards a route subtree: 401 without a bearer token, 403
// when the token is invalid or expired.
func RequireAuth(parse TokenParser, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "access token required"})
				return
			}

			userID, err := parse.ParseToken(parts[1])
			if err != nil {
				log.Warn().Err(err).Msg("rejected token")
				writeErr(w, log, r, apperr.ErrTokenInvalid)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
