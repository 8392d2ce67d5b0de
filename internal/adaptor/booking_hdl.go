package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-ticketing/internal/dto/request"
	"movie-ticketing/internal/usecase"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// BuyTicket handles POST /buy/ticket
func (h *BookingHandler) BuyTicket(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.BuyTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.BuyTicket(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "buy ticket")
		return
	}

	utils.ResponseSuccess(w, "Ticket purchased successfully", resp)
}
