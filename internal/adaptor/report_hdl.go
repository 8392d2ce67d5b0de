package adaptor

import (
	"net/http"

	"movie-ticketing/internal/usecase"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// TopMovies handles GET /topmovie
func (h *ReportHandler) TopMovies(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.service.TopMovies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "top movies")
		return
	}

	utils.ResponseSuccess(w, "Top movies retrieved", rankings)
}
