package services

import (
	"Stash/internal/cache"
	"Stash/internal/config"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cache timeouts.
const (
	CacheTTLShort  = time.Minute
	CacheTTLMedium = 5 * time.Minute
	CacheTTLLong   = time.Hour
	CacheTTLStats  = 10 * time.Minute
)

// Cache key prefixes.
const (
	CacheKeyStats    = "stats"
	CacheKeyLocation = "location"
	CacheKeyItem     = "item"
	CacheKeyUser     = "user"
)

type CacheService interface {
	// Key builds a deterministic cache key from a logical name, entity IDs
	// and, for user-dependent results, the requesting user's ID.
	Key(parts ...string) string

	// GetOrCompute unmarshals a cached value into dest, or runs produce to
	// fill dest, stores the result with the given TTL and returns it. A
	// produce error is returned as-is and nothing is cached.
	GetOrCompute(key string, ttl time.Duration, dest any, produce func() error) error

	Delete(keys ...string)
	InvalidateItem(itemID uuid.UUID)
	InvalidateLocation(locationID uuid.UUID)
	InvalidateUser(userID uuid.UUID)
	InvalidateStats()
	Clear()
}

type cacheServiceImpl struct {
	store cache.Cache
}

func NewCacheService(store cache.Cache) CacheService {
	return &cacheServiceImpl{store: store}
}

// NewCacheStore picks the cache backend from the configuration. Redis is
// used when enabled and reachable, otherwise the in-process store. A dead
// Redis only costs cache hits, never availability.
func NewCacheStore(configuration *config.Configuration, logService LogService) cache.Cache {
	if configuration.Cache.Enabled {
		store, err := cache.NewRedisCache(
			configuration.Cache.Addr,
			configuration.Cache.Password,
			configuration.Cache.DB,
			logService.Log,
		)
		if err == nil {
			return store
		}
		logService.Log.WithError(err).Warn("redis unavailable, falling back to in-memory cache")
	}
	return cache.NewMemoryCache()
}

func (s *cacheServiceImpl) Key(parts ...string) string {
	return strings.Join(parts, ":")
}

func (s *cacheServiceImpl) GetOrCompute(key string, ttl time.Duration, dest any, produce func() error) error {
	if raw, ok := s.store.Get(key); ok {
		if err := json.Unmarshal(raw, dest); err == nil {
			return nil
		}
		// Unreadable entry, drop it and recompute.
		s.store.Delete(key)
	}
	if err := produce(); err != nil {
		return err
	}
	if raw, err := json.Marshal(dest); err == nil {
		s.store.Set(key, raw, ttl)
	}
	return nil
}

func (s *cacheServiceImpl) Delete(keys ...string) {
	s.store.Delete(keys...)
}

func (s *cacheServiceImpl) InvalidateItem(itemID uuid.UUID) {
	s.store.DeletePrefix(s.Key(CacheKeyItem, itemID.String()))
	s.InvalidateStats()
}

func (s *cacheServiceImpl) InvalidateLocation(locationID uuid.UUID) {
	s.store.DeletePrefix(s.Key(CacheKeyLocation, locationID.String()))
	s.InvalidateStats()
}

func (s *cacheServiceImpl) InvalidateUser(userID uuid.UUID) {
	s.store.DeletePrefix(s.Key(CacheKeyUser, userID.String()))
	s.InvalidateStats()
}

func (s *cacheServiceImpl) InvalidateStats() {
	s.store.DeletePrefix(CacheKeyStats + ":")
}

func (s *cacheServiceImpl) Clear() {
	s.store.Clear()
}
