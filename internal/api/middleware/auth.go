package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/auth"
	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

const (
	msgMissingToken = "missing or malformed authorization header"
	msgInvalidToken = "invalid token"
	msgExpiredToken = "token expired"
	msgForbidden    = "insufficient permissions"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// TokenParser validates bearer tokens and extracts their claims.
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// Auth validates the Bearer token and puts the caller's id and role
// into the request context.
func Auth(parser TokenParser) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.Parse(token)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					handlers.RespondUnauthorized(w, msgExpiredToken)
					return
				}
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, roleKey, domain.Role(claims.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
// Must run after Auth.
func RequireRoles(roles ...domain.Role) mux.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if _, ok := allowed[role]; !ok {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserID returns the authenticated user's id from the context.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetRole returns the authenticated user's role from the context.
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	return role, ok
}
