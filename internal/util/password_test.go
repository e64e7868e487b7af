package util

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword(t *testing.T) {
	password := "s3cret-passw0rd"

	hashedPassword, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPassword)

	require.NoError(t, CheckPassword(password, hashedPassword))

	err = CheckPassword("wrong-password", hashedPassword)
	require.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)

	again, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hashedPassword, again)
}
