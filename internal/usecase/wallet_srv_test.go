package usecase_test

import (
	"context"
	"testing"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/internal/dto/request"
	"movie-ticketing/internal/usecase"
	"movie-ticketing/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRequestTopup(t *testing.T) {
	topups := new(MockTopupRepository)
	service := usecase.NewWalletService(topups, zap.NewNop())

	caller := &entity.User{ID: 7, Username: "alice"}

	topups.On("Create", mock.Anything, mock.MatchedBy(func(topup *entity.Topup) bool {
		return topup.UserID == 7 && topup.Amount == 250 && !topup.IsConfirmed
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Topup).ID = 5
	}).Return(nil)

	resp, err := service.RequestTopup(context.Background(), caller, &request.TopupRequest{Amount: 250})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(250), resp.Amount)
	assert.False(t, resp.IsConfirmed)
	topups.AssertExpectations(t)
}

func TestConfirmTopup(t *testing.T) {
	topups := new(MockTopupRepository)
	service := usecase.NewWalletService(topups, zap.NewNop())

	topups.On("Confirm", mock.Anything, int64(5)).
		Return(&entity.Topup{ID: 5, UserID: 7, Amount: 250, IsConfirmed: true}, nil)

	resp, err := service.ConfirmTopup(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.True(t, resp.IsConfirmed)
}

func TestConfirmTopupErrors(t *testing.T) {
	for _, want := range []error{apperrors.ErrTopupNotFound, apperrors.ErrTopupConfirmed} {
		t.Run(want.Error(), func(t *testing.T) {
			topups := new(MockTopupRepository)
			service := usecase.NewWalletService(topups, zap.NewNop())

			topups.On("Confirm", mock.Anything, int64(5)).Return(nil, want)

			resp, err := service.ConfirmTopup(context.Background(), 5)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, want)
		})
	}
}
