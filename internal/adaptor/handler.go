package adaptor

import (
	"errors"
	"net/http"

	"movie-ticketing/internal/usecase"
	"movie-ticketing/pkg/apperrors"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	User    *UserHandler
	Catalog *CatalogHandler
	Wallet  *WalletHandler
	Booking *BookingHandler
	Report  *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:    NewUserHandler(service.User, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Wallet:  NewWalletHandler(service.Wallet, log),
		Booking: NewBookingHandler(service.Booking, log),
		Report:  NewReportHandler(service.Report, log),
	}
}

// handleServiceError maps domain errors onto HTTP statuses. Anything not
// recognized is an internal error and must not leak details to the caller.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrMovieNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound),
		errors.Is(err, apperrors.ErrTheaterNotFound),
		errors.Is(err, apperrors.ErrScheduleNotFound),
		errors.Is(err, apperrors.ErrTopupNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperrors.ErrMovieExists),
		errors.Is(err, apperrors.ErrScheduleExists),
		errors.Is(err, apperrors.ErrTheaterExists):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, apperrors.ErrUsernameTaken),
		errors.Is(err, apperrors.ErrNotBookable),
		errors.Is(err, apperrors.ErrSoldOut),
		errors.Is(err, apperrors.ErrInsufficientBalance),
		errors.Is(err, apperrors.ErrTopupConfirmed):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
