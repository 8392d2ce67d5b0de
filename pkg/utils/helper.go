package utils

import (
	"strconv"
	"time"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// ParseInt converts string to int64 with default value
func ParseInt(value string, defaultValue int64) int64 {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}

// Today truncates now to a calendar date in UTC.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
