package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dha-marketplace/internal/config/configs"
)

const keyPrefix = "marketplace:"

// DraftStore implements port.DraftStore on Redis. Every write refreshes the
// key's TTL so abandoned drafts expire on their own.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore connects to Redis and verifies the connection.
func NewDraftStore(ctx context.Context, cfg configs.Redis) (*DraftStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &DraftStore{client: rdb, ttl: cfg.DraftTTL}, nil
}

func (s *DraftStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err = json.Unmarshal(data, dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *DraftStore) Save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+key, payload, s.ttl).Err()
}

func (s *DraftStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	return s.client.Del(ctx, prefixed...).Err()
}

// Close releases the connection pool.
func (s *DraftStore) Close() error {
	return s.client.Close()
}
