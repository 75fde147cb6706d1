package services

import (
	"Stash/internal/cache"
	"Stash/internal/errs"
	"Stash/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenService_ObtainAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	tokens := NewTokenService(env.userRepo, env.store)

	token, err := tokens.Obtain("alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := tokens.Authenticate(token)
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
}

func TestTokenService_ObtainUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	tokens := NewTokenService(repository.NewUserRepository(db), cache.NewMemoryCache())

	_, err := tokens.Obtain("nobody")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestTokenService_InactiveUserRejected(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	tokens := NewTokenService(env.userRepo, env.store)

	token, err := tokens.Obtain("alice")
	assert.NoError(t, err)

	alice.IsActive = false
	assert.NoError(t, env.userRepo.Update(alice))

	_, err = tokens.Obtain("alice")
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	_, err = tokens.Authenticate(token)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestTokenService_RefreshReplacesToken(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	tokens := NewTokenService(env.userRepo, env.store)

	first, err := tokens.Obtain("alice")
	assert.NoError(t, err)

	second, err := tokens.Refresh(alice)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = tokens.Authenticate(first)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	user, err := tokens.Authenticate(second)
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
}

func TestTokenService_Revoke(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	tokens := NewTokenService(env.userRepo, env.store)

	token, err := tokens.Obtain("alice")
	assert.NoError(t, err)

	tokens.Revoke(token)

	_, err = tokens.Authenticate(token)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	_, ok := tokens.TokenFor(alice)
	assert.False(t, ok)
}

func TestTokenService_BadToken(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", false)
	tokens := NewTokenService(env.userRepo, env.store)

	_, err := tokens.Authenticate("not-a-token")
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}
