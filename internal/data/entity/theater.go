package entity

type Theater struct {
	ID        int64 `db:"id"`
	Room      int   `db:"room"`
	TotalSeat int   `db:"total_seat"`
}
