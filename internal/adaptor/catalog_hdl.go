package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-ticketing/internal/dto/request"
	"movie-ticketing/internal/usecase"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// AddMovie handles POST /add/movie/
func (h *CatalogHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add movie")
		return
	}

	utils.ResponseCreated(w, "Movie created", resp)
}

// UpdateMovie handles PUT /update/movie/
func (h *CatalogHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", resp)
}

// DeleteMovie handles DELETE /update/movie/
func (h *CatalogHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieDeleteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.DeleteMovie(r.Context(), req.ID); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

// AddCategory handles POST /add/category/
func (h *CatalogHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add category")
		return
	}

	utils.ResponseCreated(w, "Category created", category)
}

// AddTheater handles POST /add/theater/
func (h *CatalogHandler) AddTheater(w http.ResponseWriter, r *http.Request) {
	var req request.TheaterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	theater, err := h.service.CreateTheater(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add theater")
		return
	}

	utils.ResponseCreated(w, "Theater created", theater)
}

// AddSchedule handles POST /add/schedule/
func (h *CatalogHandler) AddSchedule(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateSchedule(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add schedule")
		return
	}

	utils.ResponseCreated(w, "Schedule created", resp)
}

// UpdateSchedule handles PUT /update/schedule/
func (h *CatalogHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateSchedule(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update schedule")
		return
	}

	utils.ResponseSuccess(w, "Schedule updated successfully", resp)
}

// DeleteSchedule handles DELETE /update/schedule/
func (h *CatalogHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleDeleteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.DeleteSchedule(r.Context(), req.ID); err != nil {
		handleServiceError(w, h.log, err, "delete schedule")
		return
	}

	utils.ResponseSuccess(w, "Schedule deleted successfully", nil)
}

// List handles GET /list/ — active movies for a reference date, with nested
// schedules.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	playDateStr := r.FormValue("play_date")
	if playDateStr == "" {
		utils.ResponseBadRequest(w, "play_date parameter is required", nil)
		return
	}

	playDate, err := utils.ParseDate(playDateStr)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid date format", nil)
		return
	}

	list, err := h.service.ListActive(r.Context(), playDate)
	if err != nil {
		handleServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "Active movies retrieved", list)
}

// Search handles GET /search/?query=
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		utils.ResponseBadRequest(w, "Query parameter is required", nil)
		return
	}

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "Search results retrieved", results)
}
