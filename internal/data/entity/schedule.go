package entity

type Schedule struct {
	ID        int64  `db:"id"`
	MovieID   int64  `db:"movie_id"`
	TheaterID int64  `db:"theater_id"`
	ShowTime  string `db:"show_time"` // HH:MM

	// TheaterRoom is filled by queries that join theaters.
	TheaterRoom int `db:"-"`
}
