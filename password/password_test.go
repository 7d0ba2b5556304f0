package password

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashIsSaltedAndVerifies(t *testing.T) {
	hasher := NewBcrypt(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	require.NotEqual(t, "secret1", first)
	require.NotEqual(t, first, second)
	require.True(t, hasher.Verify(first, "secret1"))
	require.True(t, hasher.Verify(second, "secret1"))
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	hasher := NewBcrypt(bcrypt.MinCost)

	digest, err := hasher.Hash("secret1")
	require.NoError(t, err)

	require.False(t, hasher.Verify(digest, "wrong"))
	require.False(t, hasher.Verify(digest, ""))
}

func TestVerifyFailsClosedOnMalformedDigest(t *testing.T) {
	hasher := NewBcrypt(bcrypt.MinCost)

	for _, digest := range []string{"", "secret1", "$2a$", "$2a$10$short", "not-a-hash-at-all"} {
		require.False(t, hasher.Verify(digest, "secret1"), digest)
	}
}

func TestNewBcryptClampsCost(t *testing.T) {
	require.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).Cost)
	require.Equal(t, bcrypt.DefaultCost, NewBcrypt(bcrypt.MaxCost+1).Cost)
	require.Equal(t, 12, NewBcrypt(12).Cost)
}
