package wire

import (
	"movie-ticketing/internal/adaptor"
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /register/ - Create a new account
	r.Post("/register/", userHandler.Register)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(repo.User, log))

		// PUT /update/user/ - Update own username/password
		r.Put("/update/user/", userHandler.Update)

		// GET /user/ - Own profile with balance
		r.Get("/user/", userHandler.Profile)
	})
}
