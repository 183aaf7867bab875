package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sessions caches validated session tokens in Redis. Keys hold a hash of the
// token, never the token itself.
type Sessions struct {
	client *redis.Client
	prefix string
}

func NewSessions(client *redis.Client, prefix string) *Sessions {
	return &Sessions{client: client, prefix: prefix}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *Sessions) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.prefix + hex.EncodeToString(sum[:])
}

func (s *Sessions) Valid(ctx context.Context, token string) (bool, error) {
	_, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Sessions) Remember(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(token), "1", ttl).Err()
}

func (s *Sessions) Forget(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
