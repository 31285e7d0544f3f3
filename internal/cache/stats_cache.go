package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"essaycoach/internal/model"

	"github.com/redis/go-redis/v9"
)

// StatsCache handles Redis operations for per-user grading statistics
type StatsCache interface {
	Get(ctx context.Context, ownerID string) (*model.RecordStats, error)
	Set(ctx context.Context, stats *model.RecordStats) error
	Delete(ctx context.Context, ownerID string) error
}

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *statsCache) statsKey(ownerID string) string {
	return fmt.Sprintf("user:%s:stats", ownerID)
}

func (c *statsCache) Get(ctx context.Context, ownerID string) (*model.RecordStats, error) {
	data, err := c.client.Get(ctx, c.statsKey(ownerID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.RecordStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *statsCache) Set(ctx context.Context, stats *model.RecordStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.statsKey(stats.OwnerID), data, c.ttl).Err()
}

func (c *statsCache) Delete(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.statsKey(ownerID)).Err()
}
