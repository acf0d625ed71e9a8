package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every key this client writes
const keyPrefix = "hackerstories:"

// RedisConfig configures the Redis connection
type RedisConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
}

// RedisStore persists values as plain Redis strings.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects and verifies connectivity with a ping.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("search: redis get %q: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	// no expiry: the term is kept until overwritten
	if err := r.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("search: redis set %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying Redis client
func (r *RedisStore) Close() error {
	return r.client.Close()
}
