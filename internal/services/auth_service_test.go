package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/auth"
	"github.com/mindwellhq/mindwell-backend/internal/testutil"
)

func newTM() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	users := testutil.NewFakeUsers()
	svc := NewAuthService(users, newTM())

	sess, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "ann@x.com", sess.Account.Email)
	assert.NotEmpty(t, sess.Account.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := testutil.NewFakeUsers()
	svc := NewAuthService(users, newTM())

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "ann@x.com", "secret2")
	require.ErrorIs(t, err, apperr.ErrConflict)

	// exactly one record exists
	u, err := users.GetByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
}

func TestAuthService_Login(t *testing.T) {
	users := testutil.NewFakeUsers()
	svc := NewAuthService(users, newTM())

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	sess, err := svc.Login(context.Background(), "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	users := testutil.NewFakeUsers()
	svc := NewAuthService(users, newTM())

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	// unknown email and wrong password fail identically
	_, err = svc.Login(context.Background(), "nobody@x.com", "secret1")
	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "ann@x.com", "wrong")
	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthService_PasswordNeverSerialized(t *testing.T) {
	users := testutil.NewFakeUsers()
	svc := NewAuthService(users, newTM())

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	u, err := users.GetByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret1")
	assert.NotContains(t, string(b), u.PasswordHash)
}
