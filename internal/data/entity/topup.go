package entity

type Topup struct {
	ID          int64 `db:"id"`
	UserID      int64 `db:"user_id"`
	Amount      int64 `db:"amount"`
	IsConfirmed bool  `db:"is_confirmed"`
}
