package psswd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	h := Bcrypt{Cost: bcrypt.MinCost}

	hash, err := h.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.ComparePassword("s3cret", hash))
	assert.False(t, h.ComparePassword("wrong", hash))
}
