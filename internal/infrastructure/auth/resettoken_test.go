package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenService_RoundTrip(t *testing.T) {
	svc := NewResetTokenService("test-secret", 30)

	token, err := svc.Generate("demo@adaptive.game")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "demo@adaptive.game", email)
}

func TestResetTokenService_WrongSecret(t *testing.T) {
	issuer := NewResetTokenService("secret-a", 30)
	verifier := NewResetTokenService("secret-b", 30)

	token, err := issuer.Generate("demo@adaptive.game")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestResetTokenService_Expired(t *testing.T) {
	svc := NewResetTokenService("test-secret", -1)

	token, err := svc.Generate("demo@adaptive.game")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestHashToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("demo1234")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, hasher.Verify("demo1234", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
	assert.Error(t, hasher.Verify("demo1234", "not-a-hash"))
}
