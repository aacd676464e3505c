package middleware

import (
	"context"
	"net/http"

	"inkwell/internal/adapters/http/response"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth resolves the bearer token from the Authorization header and
// stores the authenticated user in the request context. Any failure
// (missing header, bad signature, expired token, unknown subject) is a
// 401.
func Auth(svc domain.AuthService, log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := svc.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				log.Debug("auth: rejected request", "path", r.URL.Path, "error", err)
				w.Header().Set("WWW-Authenticate", "Bearer")
				response.Error(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}
