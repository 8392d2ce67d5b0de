package wire

import (
	"movie-ticketing/internal/adaptor"
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWallet(
	r chi.Router,
	walletHandler *adaptor.WalletHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(repo.User, log))

		// POST /topup/ - Request a wallet top-up (caller's own wallet)
		r.Post("/topup/", walletHandler.Topup)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(repo.User, log))
		r.Use(middleware.AdminOnly(log))

		// PUT /confirm/topup/ - Confirm a pending top-up (one-way)
		r.Put("/confirm/topup/", walletHandler.ConfirmTopup)
	})
}
