package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnsubscribeToken(t *testing.T) {
	token, err := NewUnsubscribeToken()
	require.NoError(t, err)
	assert.Len(t, token, 43)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")

	other, err := NewUnsubscribeToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestNewToken(t *testing.T) {
	_, err := NewToken(8)
	assert.ErrorIs(t, err, ErrInvalidTokenLength)

	token, err := NewToken(16)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
