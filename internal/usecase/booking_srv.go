package usecase

import (
	"context"
	"time"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/internal/dto/request"
	"movie-ticketing/internal/dto/response"
	"movie-ticketing/pkg/apperrors"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	BuyTicket(ctx context.Context, user *entity.User, req *request.BuyTicketRequest) (*response.TicketResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

// BuyTicket books one seat for the schedule. Eligibility is checked first;
// the capacity check, balance debit, and transaction insert run as one atomic
// unit inside the repository, so a failed purchase leaves balance and seat
// count untouched.
func (s *bookingService) BuyTicket(ctx context.Context, user *entity.User, req *request.BuyTicketRequest) (*response.TicketResponse, error) {
	schedule, err := s.repo.Schedule.FindByID(ctx, req.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, apperrors.ErrScheduleNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, schedule.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperrors.ErrMovieNotFound
	}

	date, err := s.transactionDate(req.Date)
	if err != nil {
		return nil, err
	}

	if !movie.ActiveOn(date) {
		s.log.Warn("Purchase outside active window",
			zap.Int64("user_id", user.ID),
			zap.Int64("schedule_id", schedule.ID),
			zap.String("launching", movie.Launching.Format(utils.DateFormat)),
			zap.String("date", date.Format(utils.DateFormat)),
		)
		return nil, apperrors.ErrNotBookable
	}

	transaction, err := s.repo.Transaction.Purchase(ctx, user.ID, schedule.ID, date)
	if err != nil {
		return nil, err
	}

	// Re-read for the balance after debit rather than trusting the stale
	// record resolved at auth time.
	buyer, err := s.repo.User.FindByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	remaining := user.Balance - movie.TicketPrice
	if buyer != nil {
		remaining = buyer.Balance
	}

	resp := response.TicketToResponse(transaction, movie.TicketPrice, remaining)
	return &resp, nil
}

// transactionDate resolves the purchase date per the configured policy:
// caller-supplied when allowed and present, otherwise today.
func (s *bookingService) transactionDate(raw string) (time.Time, error) {
	if s.config.Booking.AllowClientDate && raw != "" {
		return utils.ParseDate(raw)
	}
	return utils.Today(), nil
}
