package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckPassword("password123", hash))
	assert.False(t, CheckPassword("wrongpassword", hash))
	assert.False(t, CheckPassword("password123", "not-a-valid-hash"))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("password123")
	assert.NoError(t, err)
	second, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
