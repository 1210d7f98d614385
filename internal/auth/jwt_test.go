package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindwellhq/mindwell-backend/internal/apperr"
)

func TestTokenManager_Roundtrip(t *testing.T) {
	tm := NewTokenManager("secret", 24*time.Hour)

	tok, err := tm.Issue("user-123", "user")
	require.NoError(t, err)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.SubjectID)
	require.Equal(t, "user", claims.Role)
}

func TestTokenManager_AdminRole(t *testing.T) {
	tm := NewTokenManager("secret", 24*time.Hour)

	tok, err := tm.Issue("admin-1", "admin")
	require.NoError(t, err)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Role)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tok, err := NewTokenManager("secret-a", time.Hour).Issue("u", "user")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(tok)
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)

	tok, err := tm.Issue("u", "user")
	require.NoError(t, err)

	_, err = tm.Parse(tok)
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	_, err := tm.Parse("not-a-token")
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}
