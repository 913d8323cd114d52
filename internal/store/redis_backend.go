package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "wastewise:"

// RedisBackend keeps each record under one redis key, the closest
// server-side analogue to the original browser local storage.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(addr, password string, db int) *RedisBackend {
	return &RedisBackend{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (b *RedisBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *RedisBackend) Save(ctx context.Context, key string, data []byte) error {
	return b.client.Set(ctx, redisKeyPrefix+key, data, 0).Err()
}

func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
