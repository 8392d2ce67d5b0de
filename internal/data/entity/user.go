package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           int64    `db:"id"`
	Username     string   `db:"username"`
	PasswordHash string   `db:"password"`
	Balance      int64    `db:"balance"`
	Role         UserRole `db:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
