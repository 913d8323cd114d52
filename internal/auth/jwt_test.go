package auth

import (
	"testing"
	"time"

	"github.com/pindranil/waste-wise-report/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "waste-wise-test",
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(cfg, "user-1", "user@demo.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@demo.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "waste-wise-test", claims.Issuer)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testJWTConfig(), "user-1", "user@demo.com", "user")
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "different"
	_, err = ParseToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiry = -time.Minute
	token, err := GenerateToken(cfg, "user-1", "user@demo.com", "user")
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testJWTConfig(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
