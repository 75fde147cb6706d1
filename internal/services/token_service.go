package services

import (
	"Stash/internal/cache"
	"Stash/internal/errs"
	"Stash/internal/models"
	"Stash/internal/repository"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Token expiration time.
const TokenExpiration = 7 * 24 * time.Hour

const (
	tokenKeyPrefix     = "api_token:"
	userTokenKeyPrefix = "user_token:"
)

// TokenService issues opaque API tokens stored in the cache. Two mappings
// are kept: token -> user ID for authentication and user ID -> token so a
// user's previous token can be revoked on reissue.
type TokenService interface {
	Obtain(username string) (string, error)
	Authenticate(token string) (*models.User, error)
	Refresh(user *models.User) (string, error)
	Revoke(token string)
	TokenFor(user *models.User) (string, bool)
}

type tokenServiceImpl struct {
	userRepo repository.UserRepository
	store    cache.Cache
}

func NewTokenService(userRepo repository.UserRepository, store cache.Cache) TokenService {
	return &tokenServiceImpl{userRepo: userRepo, store: store}
}

func generateToken() string {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		// crypto/rand failing means the process is unusable anyway.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func (s *tokenServiceImpl) Obtain(username string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("%w: user", errs.ErrNotFound)
	}
	if !user.IsActive {
		return "", errs.ErrPermissionDenied
	}
	return s.issue(user), nil
}

func (s *tokenServiceImpl) Authenticate(token string) (*models.User, error) {
	raw, ok := s.store.Get(tokenKeyPrefix + token)
	if !ok {
		return nil, errs.ErrPermissionDenied
	}
	userID, err := uuid.Parse(string(raw))
	if err != nil {
		return nil, errs.ErrPermissionDenied
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, errs.ErrPermissionDenied
	}
	return user, nil
}

func (s *tokenServiceImpl) Refresh(user *models.User) (string, error) {
	if !user.IsAuthenticated() {
		return "", errs.ErrPermissionDenied
	}
	return s.issue(user), nil
}

func (s *tokenServiceImpl) Revoke(token string) {
	raw, ok := s.store.Get(tokenKeyPrefix + token)
	if ok {
		s.store.Delete(userTokenKeyPrefix + string(raw))
	}
	s.store.Delete(tokenKeyPrefix + token)
}

func (s *tokenServiceImpl) TokenFor(user *models.User) (string, bool) {
	raw, ok := s.store.Get(userTokenKeyPrefix + user.ID.String())
	if !ok {
		return "", false
	}
	return string(raw), true
}

// issue replaces any previous token for the user.
func (s *tokenServiceImpl) issue(user *models.User) string {
	if previous, ok := s.TokenFor(user); ok {
		s.store.Delete(tokenKeyPrefix + previous)
	}
	token := generateToken()
	s.store.Set(tokenKeyPrefix+token, []byte(user.ID.String()), TokenExpiration)
	s.store.Set(userTokenKeyPrefix+user.ID.String(), []byte(token), TokenExpiration)
	return token
}
