package usecase

import (
	"context"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/internal/dto/request"
	"movie-ticketing/internal/dto/response"

	"go.uber.org/zap"
)

type WalletService interface {
	// RequestTopup creates an unconfirmed top-up tied to the caller's own
	// identity; funds apply only after an admin confirms it.
	RequestTopup(ctx context.Context, user *entity.User, req *request.TopupRequest) (*response.TopupResponse, error)

	// ConfirmTopup is admin-only and one-way: a confirmed top-up credits the
	// owner exactly once and can never be confirmed again.
	ConfirmTopup(ctx context.Context, topupID int64) (*response.TopupResponse, error)
}

type walletService struct {
	topups repository.TopupRepository
	log    *zap.Logger
}

func NewWalletService(topups repository.TopupRepository, log *zap.Logger) WalletService {
	return &walletService{
		topups: topups,
		log:    log.With(zap.String("service", "wallet")),
	}
}

func (s *walletService) RequestTopup(ctx context.Context, user *entity.User, req *request.TopupRequest) (*response.TopupResponse, error) {
	topup := &entity.Topup{
		UserID:      user.ID,
		Amount:      req.Amount,
		IsConfirmed: false,
	}

	if err := s.topups.Create(ctx, topup); err != nil {
		return nil, err
	}

	s.log.Info("Topup requested",
		zap.Int64("topup_id", topup.ID),
		zap.Int64("user_id", user.ID),
		zap.Int64("amount", topup.Amount),
	)

	resp := response.TopupToResponse(topup)
	return &resp, nil
}

func (s *walletService) ConfirmTopup(ctx context.Context, topupID int64) (*response.TopupResponse, error) {
	topup, err := s.topups.Confirm(ctx, topupID)
	if err != nil {
		return nil, err
	}

	resp := response.TopupToResponse(topup)
	return &resp, nil
}
