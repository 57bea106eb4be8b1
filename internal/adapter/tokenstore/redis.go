package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores the token under one key, expiring with the token itself.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis connects to redisURL and verifies the connection.
func NewRedis(ctx context.Context, redisURL, key string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("tokenstore: parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("tokenstore: connect to redis: %w", err)
	}

	return NewRedisWithClient(client, key), nil
}

// NewRedisWithClient creates a store from an existing client.
func NewRedisWithClient(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (r *Redis) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore: load: %w", err)
	}
	return token, nil
}

// Save stores the token. A zero expiresAt keeps it until cleared; an
// expiresAt in the past clears it.
func (r *Redis) Save(ctx context.Context, token string, expiresAt time.Time) error {
	var ttl time.Duration
	if !expiresAt.IsZero() {
		ttl = time.Until(expiresAt)
		if ttl <= 0 {
			return r.Clear(ctx)
		}
	}
	if err := r.client.Set(ctx, r.key, token, ttl).Err(); err != nil {
		return fmt.Errorf("tokenstore: save: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("tokenstore: clear: %w", err)
	}
	return nil
}

func (r *Redis) Close() error { return r.client.Close() }
