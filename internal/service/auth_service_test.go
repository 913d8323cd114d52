package service

import (
	"context"
	"testing"
	"time"

	"github.com/pindranil/waste-wise-report/config"
	"github.com/pindranil/waste-wise-report/internal/auth"
	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	require.NoError(t, st.Load(context.Background()))
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "waste-wise-test"}}
	return NewAuthService(cfg, st)
}

func TestLogin_DemoAccounts(t *testing.T) {
	svc := newAuthService(t)

	u, token, err := svc.Login("user@demo.com", "demo123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, u.Role)
	claims, err := auth.ParseToken(&svc.cfg.JWT, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	admin, _, err := svc.Login("admin@demo.com", "demo123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login("user@demo.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, _, err = svc.Login("nobody@demo.com", "demo123")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}
