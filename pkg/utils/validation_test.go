package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Username string `validate:"required,min=3,max=20"`
	Amount   int64  `validate:"required,gt=0"`
	Date     string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Username: "alice", Amount: 10, Date: "2026-08-25"})
		assert.Nil(t, errs)
	})

	t.Run("missing required fields", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{})
		assert.Equal(t, "This field is required", errs["Username"])
		assert.Equal(t, "This field is required", errs["Amount"])
	})

	t.Run("too short", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Username: "al", Amount: 10})
		assert.Equal(t, "Minimum is 3", errs["Username"])
	})

	t.Run("bad date format", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Username: "alice", Amount: 10, Date: "25-08-2026"})
		assert.Equal(t, "Must match format 2006-01-02", errs["Date"])
	})
}

func TestFormatValidationErrors(t *testing.T) {
	formatted := FormatValidationErrors(map[string]string{"Username": "This field is required"})
	assert.Equal(t, "Username: This field is required", formatted)
}
