package response

import "movie-ticketing/internal/data/entity"

type MovieRankingResponse struct {
	ID          int64  `json:"id"`
	Movie       string `json:"movie"`
	TicketCount int64  `json:"ticket_count"`
}

func RankingToResponse(ranking *entity.MovieRanking) MovieRankingResponse {
	return MovieRankingResponse{
		ID:          ranking.MovieID,
		Movie:       ranking.MovieName,
		TicketCount: ranking.TicketCount,
	}
}
