package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, int64(42), ParseInt("42", 0))
	assert.Equal(t, int64(7), ParseInt("", 7))
	assert.Equal(t, int64(7), ParseInt("abc", 7))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-25")
	assert.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 25, d.Day())

	_, err = ParseDate("25/08/2026")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	today := Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Zero(t, today.Second())
}
