package apperrors

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; anything else is an
// internal error.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTheaterNotFound  = errors.New("theater not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrTopupNotFound    = errors.New("topup not found")

	ErrUsernameTaken  = errors.New("username already taken")
	ErrMovieExists    = errors.New("movie already exists")
	ErrTheaterExists  = errors.New("theater room already exists")
	ErrScheduleExists = errors.New("schedule already exists")

	ErrNotBookable         = errors.New("movie is not bookable on this date")
	ErrSoldOut             = errors.New("schedule is sold out")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTopupConfirmed      = errors.New("topup already confirmed")
)
