package wire

import (
	"movie-ticketing/internal/adaptor"
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(repo.User, log))

		// GET /list/ - Active movies with nested schedules
		r.Get("/list/", catalogHandler.List)

		// GET /search/ - Search movies by name or category
		r.Get("/search/", catalogHandler.Search)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(repo.User, log))
		r.Use(middleware.AdminOnly(log))

		r.Post("/add/movie/", catalogHandler.AddMovie)
		r.Put("/update/movie/", catalogHandler.UpdateMovie)
		r.Delete("/update/movie/", catalogHandler.DeleteMovie)

		r.Post("/add/category/", catalogHandler.AddCategory)
		r.Post("/add/theater/", catalogHandler.AddTheater)

		r.Post("/add/schedule/", catalogHandler.AddSchedule)
		r.Put("/update/schedule/", catalogHandler.UpdateSchedule)
		r.Delete("/update/schedule/", catalogHandler.DeleteSchedule)
	})
}
