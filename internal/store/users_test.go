package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateAndGetUser(t *testing.T) {
	s := NewTestStore(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.CreateUser("admin", string(hash)))

	user, err := s.GetUserByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin", user.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestGetUserUnknown(t *testing.T) {
	s := NewTestStore(t)

	user, err := s.GetUserByUsername("ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := NewTestStore(t)

	require.NoError(t, s.CreateUser("admin", "x"))
	assert.Error(t, s.CreateUser("admin", "y"))
}
