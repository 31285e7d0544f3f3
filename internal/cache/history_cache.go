package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"essaycoach/internal/model"

	"github.com/redis/go-redis/v9"
)

// HistoryCache handles Redis operations for the per-session grading history
type HistoryCache interface {
	Append(ctx context.Context, sessionID string, record *model.Record) error
	List(ctx context.Context, sessionID string) ([]*model.Record, error)
	Delete(ctx context.Context, sessionID string) error
}

type historyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHistoryCache creates a new history cache
func NewHistoryCache(client *redis.Client, ttl time.Duration) HistoryCache {
	return &historyCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *historyCache) historyKey(sessionID string) string {
	return fmt.Sprintf("session:%s:history", sessionID)
}

func (c *historyCache) Append(ctx context.Context, sessionID string, record *model.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	key := c.historyKey(sessionID)
	if err := c.client.RPush(ctx, key, data).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

// List returns the session history in append order, oldest first.
func (c *historyCache) List(ctx context.Context, sessionID string) ([]*model.Record, error) {
	items, err := c.client.LRange(ctx, c.historyKey(sessionID), 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	records := make([]*model.Record, 0, len(items))
	for _, item := range items {
		var record model.Record
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			continue
		}
		records = append(records, &record)
	}
	return records, nil
}

func (c *historyCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.historyKey(sessionID)).Err()
}
