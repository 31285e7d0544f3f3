package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"essaycoach/internal/model"

	"github.com/redis/go-redis/v9"
)

// SessionCache handles Redis operations for grading sessions and their
// pending interaction state
type SessionCache interface {
	// Session metadata
	SetSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error

	// Pending interaction (at most one per session)
	SetPending(ctx context.Context, pending *model.PendingInteraction) error
	GetPending(ctx context.Context, sessionID string) (*model.PendingInteraction, error)
	DeletePending(ctx context.Context, sessionID string) error

	// In-flight feedback text, grown fragment by fragment while streaming
	AppendFeedback(ctx context.Context, sessionID, fragment string) error
	GetFeedback(ctx context.Context, sessionID string) (string, error)
	DeleteFeedback(ctx context.Context, sessionID string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new session cache
func NewSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    ttl,
	}
}

// Key helpers
func (c *sessionCache) sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (c *sessionCache) pendingKey(sessionID string) string {
	return fmt.Sprintf("session:%s:pending", sessionID)
}

func (c *sessionCache) feedbackKey(sessionID string) string {
	return fmt.Sprintf("session:%s:pending:feedback", sessionID)
}

// Session metadata
func (c *sessionCache) SetSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.sessionKey(session.ID), data, c.ttl).Err()
}

func (c *sessionCache) GetSession(ctx context.Context, id string) (*model.Session, error) {
	data, err := c.client.Get(ctx, c.sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionCache) DeleteSession(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.sessionKey(id)).Err()
}

// Pending interaction
func (c *sessionCache) SetPending(ctx context.Context, pending *model.PendingInteraction) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.pendingKey(pending.SessionID), data, c.ttl).Err()
}

func (c *sessionCache) GetPending(ctx context.Context, sessionID string) (*model.PendingInteraction, error) {
	data, err := c.client.Get(ctx, c.pendingKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pending model.PendingInteraction
	if err := json.Unmarshal([]byte(data), &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func (c *sessionCache) DeletePending(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.pendingKey(sessionID)).Err()
}

// In-flight feedback
func (c *sessionCache) AppendFeedback(ctx context.Context, sessionID, fragment string) error {
	key := c.feedbackKey(sessionID)
	if err := c.client.Append(ctx, key, fragment).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *sessionCache) GetFeedback(ctx context.Context, sessionID string) (string, error) {
	data, err := c.client.Get(ctx, c.feedbackKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return data, err
}

func (c *sessionCache) DeleteFeedback(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.feedbackKey(sessionID)).Err()
}
