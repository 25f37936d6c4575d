package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParse(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	token, err := maker.GenerateToken(42, "jane@example.com", "entrepreneur")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "entrepreneur", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestMaker_ParseExpired(t *testing.T) {
	maker := NewMaker("test-secret", -time.Minute)

	token, err := maker.GenerateToken(1, "old@example.com", "admin")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestMaker_ParseWrongSecret(t *testing.T) {
	maker := NewMaker("secret-a", time.Hour)
	other := NewMaker("secret-b", time.Hour)

	token, err := maker.GenerateToken(1, "a@example.com", "admin")
	require.NoError(t, err)

	claims, err := other.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestMaker_ParseGarbage(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	claims, err := maker.ParseToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
