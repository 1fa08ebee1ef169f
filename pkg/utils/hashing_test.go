package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("p")
	require.NoError(t, err)
	assert.NotEqual(t, "p", hash)

	assert.True(t, PasswordMatches(hash, "p"))
	assert.False(t, PasswordMatches(hash, "q"))
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPasswordMatches_EmptyHash(t *testing.T) {
	assert.False(t, PasswordMatches("", ""))
	assert.False(t, PasswordMatches("", "anything"))
}
