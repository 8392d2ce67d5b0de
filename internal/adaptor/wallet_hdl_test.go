package adaptor_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-ticketing/internal/adaptor"
	"movie-ticketing/internal/data/entity"
	"movie-ticketing/internal/dto/response"
	"movie-ticketing/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestTopupHandler(t *testing.T) {
	user := &entity.User{ID: 7, Username: "alice", Role: entity.RoleUser}

	t.Run("submitted", func(t *testing.T) {
		service := new(MockWalletService)
		handler := adaptor.NewWalletHandler(service, zap.NewNop())

		service.On("RequestTopup", mock.Anything, user, mock.Anything).Return(&response.TopupResponse{
			ID:     5,
			Amount: 250,
		}, nil)

		rec := httptest.NewRecorder()
		handler.Topup(rec, authedRequest(http.MethodPost, "/topup/", `{"amount":250}`, user))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		service := new(MockWalletService)
		handler := adaptor.NewWalletHandler(service, zap.NewNop())

		rec := httptest.NewRecorder()
		handler.Topup(rec, authedRequest(http.MethodPost, "/topup/", `{"amount":-10}`, user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "RequestTopup", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestConfirmTopupHandler(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		service := new(MockWalletService)
		handler := adaptor.NewWalletHandler(service, zap.NewNop())

		service.On("ConfirmTopup", mock.Anything, int64(5)).Return(&response.TopupResponse{
			ID:          5,
			Amount:      250,
			IsConfirmed: true,
		}, nil)

		rec := httptest.NewRecorder()
		handler.ConfirmTopup(rec, authedRequest(http.MethodPut, "/confirm/topup/", `{"id":5}`, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing topup", func(t *testing.T) {
		service := new(MockWalletService)
		handler := adaptor.NewWalletHandler(service, zap.NewNop())

		service.On("ConfirmTopup", mock.Anything, int64(5)).Return(nil, apperrors.ErrTopupNotFound)

		rec := httptest.NewRecorder()
		handler.ConfirmTopup(rec, authedRequest(http.MethodPut, "/confirm/topup/", `{"id":5}`, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("already confirmed", func(t *testing.T) {
		service := new(MockWalletService)
		handler := adaptor.NewWalletHandler(service, zap.NewNop())

		service.On("ConfirmTopup", mock.Anything, int64(5)).Return(nil, apperrors.ErrTopupConfirmed)

		rec := httptest.NewRecorder()
		handler.ConfirmTopup(rec, authedRequest(http.MethodPut, "/confirm/topup/", `{"id":5}`, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
