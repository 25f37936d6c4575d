package middleware

import (
	"context"
	"net/http"
	"strings"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/lib/jwt"
	"entrepreneur-tracker/internal/models"
	"github.com/go-chi/render"
)

type key int

const identityKey key = 1

// Identity is the verified caller extracted from the bearer token.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

// IdentityFromContext returns the caller set by AuthMiddleware. The second
// value is false on routes outside the authenticated groups.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// ContextWithIdentity stores the caller identity the way AuthMiddleware does.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// AuthMiddleware verifies the bearer token and stores the caller identity in
// the request context. A missing token and a bad token are distinct
// failures: 401 for the former, 403 for the latter.
func AuthMiddleware(tokens jwt.Maker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "access token required"))
				return
			}

			tokenStr, _ := strings.CutPrefix(authHeader, "Bearer ")

			claims, err := tokens.ParseToken(tokenStr)
			if err != nil {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, api.Error(api.ErrCodeInvalidToken, "invalid or expired token"))
				return
			}

			identity := Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// AdminOnly gates the admin subtree. It runs after AuthMiddleware, so a
// missing identity can only mean a wiring mistake; it is denied all the same.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok || identity.Role != models.RoleAdmin {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeAccessDenied, "admin access required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
