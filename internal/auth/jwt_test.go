package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/internal/config"
)

func setTestConfig(t *testing.T, ttlMinutes int) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "jwt-test-secret"
	config.AppConfig.JWT.TTL = ttlMinutes
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, 60)

	token, err := GenerateToken("user-123", "moderator")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "moderator", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t, -1)

	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, 60)
	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "a-different-secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, 60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
