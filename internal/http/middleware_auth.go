package http

import (
	"net/http"
	"strings"

	"libraryapi/internal/auth"
	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
)

func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
				return
			}

			ctx := httpx.ContextWithUser(r.Context(), claims.Sub, string(claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a handler behind the ADMIN role. Must run after
// AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if entity.Role(httpx.RoleFrom(r)) != entity.RoleAdmin {
			JSONError(w, http.StatusForbidden, "FORBIDDEN", "You do not have permissions", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
