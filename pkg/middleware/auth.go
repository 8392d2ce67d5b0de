package middleware

import (
	"net/http"

	"movie-ticketing/internal/data/repository"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

// BasicAuth resolves the caller from the HTTP basic-auth header on every
// request. No session or token state is kept; each call re-authenticates.
// On success the resolved user record is stored in the request context.
func BasicAuth(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				utils.ResponseUnauthorized(w, "Missing credentials")
				return
			}

			user, err := userRepo.FindByUsername(r.Context(), username)
			if err != nil {
				logger.Error("Failed to resolve user for auth",
					zap.String("username", username),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
				logger.Warn("Invalid credentials", zap.String("username", username))
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly requires the authenticated caller to hold the admin role. Role
// mismatch is answered with 401, the same as a failed login.
func AdminOnly(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			if !user.IsAdmin() {
				logger.Warn("Non-admin access attempt",
					zap.Int64("user_id", user.ID),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
