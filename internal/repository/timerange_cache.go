package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/domain"
)

const listCacheKey = "time_ranges:stored"

// cachedTimeRangeRepository serves the full listing from Redis when fresh and
// drops the cached copy after every write. Cache failures degrade to the
// underlying store, never to an error.
type cachedTimeRangeRepository struct {
	inner  TimeRangeRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedTimeRangeRepository wraps a repository with a Redis listing cache.
// A nil client disables caching.
func NewCachedTimeRangeRepository(inner TimeRangeRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) TimeRangeRepository {
	return &cachedTimeRangeRepository{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (r *cachedTimeRangeRepository) Create(ctx context.Context, start, end time.Time) (*domain.TimeRange, error) {
	tr, err := r.inner.Create(ctx, start, end)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return tr, nil
}

func (r *cachedTimeRangeRepository) ListAll(ctx context.Context) ([]domain.TimeRange, error) {
	if r.client != nil {
		cached, err := r.client.Get(ctx, listCacheKey).Bytes()
		if err == nil {
			var ranges []domain.TimeRange
			if err := json.Unmarshal(cached, &ranges); err == nil {
				return ranges, nil
			}
			r.invalidate(ctx)
		}
	}

	ranges, err := r.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if r.client != nil {
		if payload, err := json.Marshal(ranges); err == nil {
			if err := r.client.Set(ctx, listCacheKey, payload, r.ttl).Err(); err != nil {
				r.logger.Warn("failed to cache stored ranges", zap.Error(err))
			}
		}
	}
	return ranges, nil
}

func (r *cachedTimeRangeRepository) Deactivate(ctx context.Context, id string) (*domain.TimeRange, error) {
	tr, err := r.inner.Deactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return tr, nil
}

func (r *cachedTimeRangeRepository) invalidate(ctx context.Context) {
	if r.client == nil {
		return
	}
	if err := r.client.Del(ctx, listCacheKey).Err(); err != nil {
		r.logger.Warn("failed to invalidate stored ranges cache", zap.Error(err))
	}
}
