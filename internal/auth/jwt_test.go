package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, exp, err := m.Generate("u_alice")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u_alice", claims.UserID)
	assert.Equal(t, "u_alice", claims.Subject)
}

func TestVerifyExpired(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)
	token, _, err := m.Generate("u_alice")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).Generate("u_alice")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	_, err := m.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
