package wire

import (
	"movie-ticketing/internal/adaptor"
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(repo.User, log))

		// POST /buy/ticket - Purchase one seat for a schedule
		r.Post("/buy/ticket", bookingHandler.BuyTicket)
	})
}
