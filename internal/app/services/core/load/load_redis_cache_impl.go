package load

import (
	"context"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type loadRedisCache struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewLoadRedisCache(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.LoadCache {
	return &loadRedisCache{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (c *loadRedisCache) Get(ctx context.Context, key string) (*models.LoadClustering, bool, error) {
	raw, err := c.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if raw == "" {
		return nil, false, nil
	}

	var clustering models.LoadClustering
	if err := json.Unmarshal([]byte(raw), &clustering); err != nil {
		return nil, false, exceptions.ErrCannotParseJSON(err)
	}
	return &clustering, true, nil
}

func (c *loadRedisCache) Set(ctx context.Context, key string, value *models.LoadClustering) error {
	return c.RedisRepository.Set(ctx, key, value, c.TTL)
}
