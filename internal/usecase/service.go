package usecase

import (
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User    UserService
	Catalog CatalogService
	Wallet  WalletService
	Booking BookingService
	Report  ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		User:    NewUserService(repo.User, log),
		Catalog: NewCatalogService(repo, log),
		Wallet:  NewWalletService(repo.Topup, log),
		Booking: NewBookingService(repo, config, log),
		Report:  NewReportService(repo.Transaction, log),
	}
}
