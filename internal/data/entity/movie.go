package entity

import "time"

// ActiveDays is the length of the booking window that starts at a movie's
// launch date.
const ActiveDays = 7

type Movie struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Launching   time.Time `db:"launching"`
	CategoryID  int64     `db:"category_id"`
	TicketPrice int64     `db:"ticket_price"`

	// CategoryName is filled by queries that join categories.
	CategoryName string `db:"-"`
}

// ActiveOn reports whether the movie is bookable on the given calendar date.
// The window runs from the launch date through launch date + ActiveDays,
// both ends inclusive. Dates are compared at day granularity.
func (m *Movie) ActiveOn(date time.Time) bool {
	launch := truncateToDay(m.Launching)
	day := truncateToDay(date)

	if day.Before(launch) {
		return false
	}
	return !day.After(launch.AddDate(0, 0, ActiveDays))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
