package adaptor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-ticketing/internal/adaptor"
	"movie-ticketing/internal/data/entity"
	"movie-ticketing/internal/dto/response"
	"movie-ticketing/pkg/apperrors"
	"movie-ticketing/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func authedRequest(method, target, body string, user *entity.User) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if user != nil {
		r = r.WithContext(utils.SetUserContext(r.Context(), user))
	}
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return envelope
}

func TestBuyTicketHandler(t *testing.T) {
	buyer := &entity.User{ID: 7, Username: "alice", Balance: 500, Role: entity.RoleUser}

	t.Run("success", func(t *testing.T) {
		service := new(MockBookingService)
		handler := adaptor.NewBookingHandler(service, zap.NewNop())

		service.On("BuyTicket", mock.Anything, buyer, mock.Anything).Return(&response.TicketResponse{
			TransactionID:    42,
			ScheduleID:       3,
			Date:             "2026-08-25",
			PricePaid:        150,
			RemainingBalance: 350,
		}, nil)

		rec := httptest.NewRecorder()
		handler.BuyTicket(rec, authedRequest(http.MethodPost, "/buy/ticket", `{"schedule_id":3,"date":"2026-08-25"}`, buyer))

		assert.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.True(t, envelope.Status)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		service := new(MockBookingService)
		handler := adaptor.NewBookingHandler(service, zap.NewNop())

		rec := httptest.NewRecorder()
		handler.BuyTicket(rec, authedRequest(http.MethodPost, "/buy/ticket", `{"schedule_id":3}`, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		service.AssertNotCalled(t, "BuyTicket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid body", func(t *testing.T) {
		service := new(MockBookingService)
		handler := adaptor.NewBookingHandler(service, zap.NewNop())

		rec := httptest.NewRecorder()
		handler.BuyTicket(rec, authedRequest(http.MethodPost, "/buy/ticket", `{not json`, buyer))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing schedule id", func(t *testing.T) {
		service := new(MockBookingService)
		handler := adaptor.NewBookingHandler(service, zap.NewNop())

		rec := httptest.NewRecorder()
		handler.BuyTicket(rec, authedRequest(http.MethodPost, "/buy/ticket", `{"date":"2026-08-25"}`, buyer))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "Validation failed", envelope.Message)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			err  error
			code int
		}{
			{apperrors.ErrScheduleNotFound, http.StatusNotFound},
			{apperrors.ErrMovieNotFound, http.StatusNotFound},
			{apperrors.ErrNotBookable, http.StatusBadRequest},
			{apperrors.ErrSoldOut, http.StatusBadRequest},
			{apperrors.ErrInsufficientBalance, http.StatusBadRequest},
		}

		for _, tt := range tests {
			t.Run(tt.err.Error(), func(t *testing.T) {
				service := new(MockBookingService)
				handler := adaptor.NewBookingHandler(service, zap.NewNop())

				service.On("BuyTicket", mock.Anything, buyer, mock.Anything).Return(nil, tt.err)

				rec := httptest.NewRecorder()
				handler.BuyTicket(rec, authedRequest(http.MethodPost, "/buy/ticket", `{"schedule_id":3}`, buyer))

				assert.Equal(t, tt.code, rec.Code)
				envelope := decodeEnvelope(t, rec)
				assert.False(t, envelope.Status)
			})
		}
	})

	t.Run("unknown error stays internal", func(t *testing.T) {
		service := new(MockBookingService)
		handler := adaptor.NewBookingHandler(service, zap.NewNop())

		service.On("BuyTicket", mock.Anything, buyer, mock.Anything).
			Return(nil, assert.AnError)

		rec := httptest.NewRecorder()
		handler.BuyTicket(rec, authedRequest(http.MethodPost, "/buy/ticket", `{"schedule_id":3}`, buyer))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "Internal server error", envelope.Message)
	})
}
