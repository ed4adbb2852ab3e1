package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/news-aggregator-api/internal/logger"
	"github.com/sbilibin2017/news-aggregator-api/internal/models"
)

// NewsCacheRepository provides cached upstream news envelopes using Redis
type NewsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached envelopes
}

// NewNewsCacheRepository creates a new repository instance with a TTL
func NewNewsCacheRepository(client *redis.Client, expiration time.Duration) *NewsCacheRepository {
	return &NewsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func cacheKey(kind, query string, page, pageSize int) string {
	return fmt.Sprintf("news:%s:%s:%d:%d", kind, query, page, pageSize)
}

// GetEnvelope fetches a cached envelope for the given upstream query.
func (r *NewsCacheRepository) GetEnvelope(ctx context.Context, kind, query string, page, pageSize int) (*models.Envelope, error) {
	key := cacheKey(kind, query, page, pageSize)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("news envelope not found in cache for %s", key)
		}
		return nil, err
	}

	var envelope models.Envelope
	if err := json.Unmarshal([]byte(val), &envelope); err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", envelope.Status,
		"error", nil,
	)

	return &envelope, nil
}

// SetEnvelope caches an envelope in Redis with expiration.
func (r *NewsCacheRepository) SetEnvelope(ctx context.Context, kind, query string, page, pageSize int, envelope *models.Envelope) error {
	key := cacheKey(kind, query, page, pageSize)

	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
