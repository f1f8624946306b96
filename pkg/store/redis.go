package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/observability"
)

const (
	redisKeyPrefix = "gridboard:layout:"
	redisIndexKey  = "gridboard:layouts"
)

// RedisStore persists layouts in Redis. Each layout lives under its own
// key as JSON, and an index set tracks the stored names so List stays
// O(layouts) instead of scanning the keyspace.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at the given URL
// (e.g. redis://localhost:6379/0) and verifies the connection.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Get retrieves a layout by name.
func (s *RedisStore) Get(ctx context.Context, name string) (*layout.Layout, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.Store().OnMiss("redis", name)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	l, err := layout.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode layout %s: %w", name, err)
	}
	observability.Store().OnHit("redis", name)
	return l, nil
}

// Set stores a layout under its name.
func (s *RedisStore) Set(ctx context.Context, l *layout.Layout) error {
	if !ValidName(l.Name) {
		return ErrInvalidName
	}
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+l.Name, data, 0)
	pipe.SAdd(ctx, redisIndexKey, l.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	observability.Store().OnSet("redis", l.Name)
	return nil
}

// Delete removes a layout by name.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, redisKeyPrefix+name)
	pipe.SRem(ctx, redisIndexKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all stored layout names in sorted order.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
