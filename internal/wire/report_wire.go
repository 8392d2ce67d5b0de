package wire

import (
	"movie-ticketing/internal/adaptor"
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(repo.User, log))

		// GET /topmovie - Top 5 movies by ticket count
		r.Get("/topmovie", reportHandler.TopMovies)
	})
}
