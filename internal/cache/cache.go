package cache

import "time"

// Cache is a key-value store for derived results. Implementations are
// best-effort: a failing backend reports misses and drops writes instead of
// returning errors, so a dead cache never fails a request.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(keys ...string)
	DeletePrefix(prefix string)
	Clear()
}
