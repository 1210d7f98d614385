package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPassword_HashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.NoError(t, VerifyPassword("secret1", hash))
	require.Error(t, VerifyPassword("wrong", hash))
}

func TestPassword_HashesAreSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
