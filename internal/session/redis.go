package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix   = "session:"
	defaultIdleTimeout = 20 * time.Minute
)

// RedisBackend keeps each session as a Redis hash with a sliding TTL.
type RedisBackend struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisBackend returns a backend storing hashes under prefix+id.
func NewRedisBackend(rdb *redis.Client, prefix string, ttl time.Duration) *RedisBackend {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = defaultIdleTimeout
	}
	return &RedisBackend{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (b *RedisBackend) key(id string) string { return b.prefix + id }

func (b *RedisBackend) Get(ctx context.Context, id, field string) (string, bool, error) {
	v, err := b.rdb.HGet(ctx, b.key(id), field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, id, field, value string) error {
	key := b.key(id)
	pipe := b.rdb.TxPipeline()
	pipe.HSet(ctx, key, field, value)
	pipe.Expire(ctx, key, b.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (b *RedisBackend) Touch(ctx context.Context, id string) (bool, error) {
	return b.rdb.Expire(ctx, b.key(id), b.ttl).Result()
}

func (b *RedisBackend) Delete(ctx context.Context, id string) error {
	return b.rdb.Del(ctx, b.key(id)).Err()
}
