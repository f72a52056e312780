package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "finance-calculators:history"

// RedisStore persists entries in redis lists, one per calculator plus a
// combined list, each trimmed to the configured capacity.
type RedisStore struct {
	client   *redis.Client
	capacity int
}

// NewRedisStore creates a redis-backed history store. The connection is
// established lazily on first use.
func NewRedisStore(cfg config.RedisConfig, capacity int) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if capacity <= 0 {
		capacity = constants.DefaultHistoryCapacity
	}
	return &RedisStore{client: rdb, capacity: capacity}
}

func redisKey(calculator string) string {
	if calculator == "" {
		return redisKeyPrefix
	}
	return redisKeyPrefix + ":" + calculator
}

// Save pushes the entry onto the combined and per-calculator lists.
func (s *RedisStore) Save(ctx context.Context, entry Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, key := range []string{redisKey(""), redisKey(entry.Calculator)} {
		pipe.LPush(ctx, key, payload)
		pipe.LTrim(ctx, key, 0, int64(s.capacity-1))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

// List reads back entries most recent first.
func (s *RedisStore) List(ctx context.Context, calculator string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}

	raw, err := s.client.LRange(ctx, redisKey(calculator), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Close releases the redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
