package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-ticketing/internal/dto/request"
	"movie-ticketing/internal/usecase"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type WalletHandler struct {
	service usecase.WalletService
	log     *zap.Logger
}

func NewWalletHandler(service usecase.WalletService, log *zap.Logger) *WalletHandler {
	return &WalletHandler{
		service: service,
		log:     log,
	}
}

// Topup handles POST /topup/
func (h *WalletHandler) Topup(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.TopupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.RequestTopup(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "request topup")
		return
	}

	utils.ResponseSuccess(w, "Top-up request submitted successfully", resp)
}

// ConfirmTopup handles PUT /confirm/topup/
func (h *WalletHandler) ConfirmTopup(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmTopupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.ConfirmTopup(r.Context(), req.ID)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm topup")
		return
	}

	utils.ResponseSuccess(w, "Top-up request confirmed successfully", resp)
}
