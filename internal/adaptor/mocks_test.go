package adaptor_test

import (
	"context"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/internal/dto/request"
	"movie-ticketing/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) BuyTicket(ctx context.Context, user *entity.User, req *request.BuyTicketRequest) (*response.TicketResponse, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TicketResponse), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, user *entity.User, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) RequestTopup(ctx context.Context, user *entity.User, req *request.TopupRequest) (*response.TopupResponse, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TopupResponse), args.Error(1)
}

func (m *MockWalletService) ConfirmTopup(ctx context.Context, topupID int64) (*response.TopupResponse, error) {
	args := m.Called(ctx, topupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TopupResponse), args.Error(1)
}
