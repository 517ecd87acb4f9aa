package http

import (
	"context"
	"net/http"
	"strings"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Middleware wraps handlers with token validation and role gates.
type Middleware struct {
	tokens security.TokenManager
}

func NewMiddleware(tokens security.TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate validates the Bearer token and stores its claims on the
// request context. Unauthenticated requests get 401 before any handler runs.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}
		token := header
		if len(token) > 7 && strings.EqualFold(token[0:7], "bearer ") {
			token = token[7:]
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil || claims.Type != security.TokenTypeAccess {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a handler to the given roles. It must run after
// Authenticate.
func (m *Middleware) RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := claimsFrom(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "authorization token is not provided")
				return
			}
			if !allowed[claims.Role] {
				writeError(w, http.StatusForbidden, "insufficient role for this operation")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func claimsFrom(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims, ok
}
