package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestPeek(t *testing.T) {
	token := mintToken(t, "u1", time.Hour)

	info, err := Peek(token)
	require.NoError(t, err)

	assert.Equal(t, "u1", info.Subject)
	assert.False(t, info.Expired())
	assert.WithinDuration(t, time.Now().Add(time.Hour), info.ExpiresAt, 5*time.Second)
}

func TestPeek_ExpiredToken(t *testing.T) {
	token := mintToken(t, "u1", -time.Minute)

	info, err := Peek(token)
	require.NoError(t, err, "peek never validates, it only decodes")
	assert.True(t, info.Expired())
}

func TestPeek_Garbage(t *testing.T) {
	_, err := Peek("not-a-jwt")
	assert.Error(t, err)
}
