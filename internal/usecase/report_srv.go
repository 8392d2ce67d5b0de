package usecase

import (
	"context"

	"movie-ticketing/internal/data/repository"
	"movie-ticketing/internal/dto/response"

	"go.uber.org/zap"
)

// topMoviesLimit is the size of the top-movies ranking.
const topMoviesLimit = 5

type ReportService interface {
	TopMovies(ctx context.Context) ([]response.MovieRankingResponse, error)
}

type reportService struct {
	transactions repository.TransactionRepository
	log          *zap.Logger
}

func NewReportService(transactions repository.TransactionRepository, log *zap.Logger) ReportService {
	return &reportService{
		transactions: transactions,
		log:          log.With(zap.String("service", "report")),
	}
}

func (s *reportService) TopMovies(ctx context.Context) ([]response.MovieRankingResponse, error) {
	rankings, err := s.transactions.TopMovies(ctx, topMoviesLimit)
	if err != nil {
		return nil, err
	}

	results := make([]response.MovieRankingResponse, 0, len(rankings))
	for _, ranking := range rankings {
		results = append(results, response.RankingToResponse(ranking))
	}

	return results, nil
}
