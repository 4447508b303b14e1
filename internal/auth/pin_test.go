// internal/auth/pin_test.go
package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPINHasherHashAndVerify(t *testing.T) {
	hasher := NewPINHasher()

	hash, err := hasher.Hash("4821")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	ok, err := hasher.Verify("4821", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("0000", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPINHasherHashesAreSalted(t *testing.T) {
	hasher := NewPINHasher()

	first, err := hasher.Hash("4821")
	require.NoError(t, err)
	second, err := hasher.Hash("4821")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPINHasherVerifyRejectsMalformedHash(t *testing.T) {
	hasher := NewPINHasher()

	_, err := hasher.Verify("4821", "not-a-hash")
	assert.Error(t, err)

	_, err = hasher.Verify("4821", "$argon2id$v=19$m=65536,t=1,p=4$!!!$!!!")
	assert.Error(t, err)
}

func TestRandomPlaceholderPIN(t *testing.T) {
	first, err := RandomPlaceholderPIN()
	require.NoError(t, err)
	assert.Len(t, first, 48)

	second, err := RandomPlaceholderPIN()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
