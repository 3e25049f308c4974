package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken("u1", "secret", time.Minute)
	require.NoError(t, err)

	claims, err := Parse(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "u1", claims.Subject)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := GenerateToken("u1", "secret", time.Minute)
	require.NoError(t, err)

	_, err = Parse(token, "other")
	require.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	token, err := GenerateToken("u1", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token, "secret")
	require.Error(t, err)
}
