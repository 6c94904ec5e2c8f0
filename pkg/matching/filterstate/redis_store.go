package filterstate

import (
	"context"
	"errors"
	"time"

	"talentflow-be/internal/pkg/logger"
	"talentflow-be/pkg/matching"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Entries outlive a browsing session but not staff turnover.
const entryTTL = 90 * 24 * time.Hour

type RedisStore struct {
	rdb    *redis.Client
	logger logger.ILogger
}

func NewRedisStore(rdb *redis.Client, log logger.ILogger) *RedisStore {
	return &RedisStore{rdb: rdb, logger: log}
}

func (s *RedisStore) Save(ctx context.Context, ownerId uuid.UUID, c matching.Criteria) error {
	key := KeyPrefix + ownerId.String()
	data, ok := Encode(c)
	if !ok {
		return s.rdb.Del(ctx, key).Err()
	}
	return s.rdb.Set(ctx, key, data, entryTTL).Err()
}

func (s *RedisStore) Load(ctx context.Context, ownerId uuid.UUID) (matching.Criteria, error) {
	key := KeyPrefix + ownerId.String()
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("FilterState", "Failed to load persisted filters, using defaults", map[string]interface{}{
				"owner_id": ownerId.String(),
				"error":    err.Error(),
			})
		}
		return matching.DefaultCriteria(), nil
	}

	c, ok := Decode(data)
	if !ok {
		s.logger.Warn("FilterState", "Corrupt persisted filters, using defaults", map[string]interface{}{
			"owner_id": ownerId.String(),
		})
		// Drop the bad entry so it does not warn on every load.
		_ = s.rdb.Del(ctx, key).Err()
	}
	return c, nil
}

func (s *RedisStore) Clear(ctx context.Context, ownerId uuid.UUID) error {
	return s.rdb.Del(ctx, KeyPrefix+ownerId.String()).Err()
}
