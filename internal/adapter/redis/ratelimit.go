// Package redis provides Redis-backed infrastructure shared between API
// processes.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/wordforge-backend/internal/config"
)

const defaultKeyPrefix = "ratelimit:"

// NewClient opens a client for cfg and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RateLimitStore keeps fixed-window counters in Redis so that every API
// process shares the same limits.
type RateLimitStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewRateLimitStore creates a store that namespaces its keys with prefix
// ("ratelimit:" when empty).
func NewRateLimitStore(client *goredis.Client, prefix string) *RateLimitStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RateLimitStore{client: client, prefix: prefix, now: time.Now}
}

// Incr counts one hit for key. The first hit of a window sets its expiry;
// later hits leave it untouched.
func (s *RateLimitStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	k := s.prefix + key

	var (
		incr *goredis.IntCmd
		pttl *goredis.DurationCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, window)
		pttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis incr %s: %w", k, err)
	}

	ttl := pttl.Val()
	if ttl <= 0 {
		ttl = window
	}
	return int(incr.Val()), s.now().Add(ttl), nil
}

// Reset deletes every counter under the store prefix.
func (s *RateLimitStore) Reset(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan %s*: %w", s.prefix, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Ping reports whether the Redis server answers.
func (s *RateLimitStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
