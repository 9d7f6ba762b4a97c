package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shogi_insight/internal/domain/pattern"
	appErrors "shogi_insight/internal/errors"
)

const recognitionKeyPrefix = "recognition:"

// RedisRecognitionCache keeps recognition results keyed by the canonical
// board text, so the same position reached by different move orders hits.
type RedisRecognitionCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.SugaredLogger
}

func NewRedisRecognitionCache(client *redis.Client, ttl time.Duration, log *zap.SugaredLogger) *RedisRecognitionCache {
	return &RedisRecognitionCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (r *RedisRecognitionCache) Get(ctx context.Context, board string) (pattern.Matches, error) {
	data, err := r.client.Get(ctx, recognitionKeyPrefix+board).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pattern.Matches{}, appErrors.ErrCacheMiss
		}
		return pattern.Matches{}, fmt.Errorf("redis get: %w", err)
	}

	var m pattern.Matches
	if err := json.Unmarshal(data, &m); err != nil {
		r.log.Warnw("dropping unreadable cache entry", "board", board, "error", err)
		r.client.Del(ctx, recognitionKeyPrefix+board)
		return pattern.Matches{}, appErrors.ErrCacheMiss
	}
	return m, nil
}

func (r *RedisRecognitionCache) Set(ctx context.Context, board string, m pattern.Matches) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, recognitionKeyPrefix+board, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
