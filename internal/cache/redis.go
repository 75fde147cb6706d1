package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisCache is the Redis-backed Cache. Backend failures are logged and
// treated as misses; they never propagate to callers.
type RedisCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisCache(addr, password string, db int, log *logrus.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCache{client: client, log: log}, nil
}

func (c *RedisCache) Get(key string) ([]byte, bool) {
	value, err := c.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("cache get failed")
		}
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(context.Background(), key, value, ttl).Err(); err != nil {
		c.log.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("cache set failed")
	}
}

func (c *RedisCache) Delete(keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(context.Background(), keys...).Err(); err != nil {
		c.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("cache delete failed")
	}
}

func (c *RedisCache) DeletePrefix(prefix string) {
	ctx := context.Background()
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		// Cannot enumerate, so fall back to clearing everything rather
		// than risk serving stale access-relevant data.
		c.log.WithFields(logrus.Fields{"prefix": prefix, "error": err.Error()}).Warn("cache scan failed, flushing")
		c.Clear()
		return
	}
	c.Delete(keys...)
}

func (c *RedisCache) Clear() {
	if err := c.client.FlushDB(context.Background()).Err(); err != nil {
		c.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("cache flush failed")
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
