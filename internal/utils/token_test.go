package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	require.NoError(t, err)
	b, err := NewToken()
	require.NoError(t, err)

	assert.Len(t, a, 2*tokenBytes)
	assert.NotEqual(t, a, b)
	_, err = hex.DecodeString(a)
	assert.NoError(t, err)
}

func TestHashToken(t *testing.T) {
	raw := "d5bb3c5e-8d34-4a4a-a5e7-1c1c9f6c2c11"
	h := HashToken(raw)
	assert.Len(t, h, 64)
	assert.NotEqual(t, raw, h)
	assert.Equal(t, h, HashToken(raw))
	assert.NotEqual(t, h, HashToken(raw+"x"))
}
