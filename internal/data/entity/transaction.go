package entity

import "time"

// Transaction records one booked seat for a schedule on a calendar date.
type Transaction struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	ScheduleID int64     `db:"schedule_id"`
	Date       time.Time `db:"date"`
}

// MovieRanking is one row of the top-movies report.
type MovieRanking struct {
	MovieID     int64  `db:"id"`
	MovieName   string `db:"name"`
	TicketCount int64  `db:"ticket_count"`
}
