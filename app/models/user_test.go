package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	u, err := CreateUser("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, ROLE_USER, u.Role)
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.False(t, u.IsAdmin())
}

func TestCreateUserRejectsInvalidInput(t *testing.T) {
	_, err := CreateUser("al", "alice@example.com", "secret123")
	assert.Error(t, err, "username too short")

	_, err = CreateUser("alice", "not-an-email", "secret123")
	assert.Error(t, err)

	_, err = CreateUser("alice", "alice@example.com", "short")
	assert.Error(t, err)
}

func TestNewAuthToken(t *testing.T) {
	tok, err := NewAuthToken(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), tok.UserID)
	assert.Len(t, tok.Token, 64)

	other, err := NewAuthToken(7)
	require.NoError(t, err)
	assert.NotEqual(t, tok.Token, other.Token)
}
