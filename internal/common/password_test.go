package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_AndCheck(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "secret1", hash)

	assert.NoError(t, CheckPassword("secret1", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}

func TestHashPassword_SaltsEveryCall(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	// same plaintext, different salt, different hash
	assert.NotEqual(t, h1, h2)
}
