package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")

	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "secret123"))
}
