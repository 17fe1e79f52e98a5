package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuestionCache handles Redis operations for generated test question sets.
// Only the question ids are stored; the documents themselves are rehydrated
// from Mongo so edits to a question flow through without invalidation. The
// TTL matches the candidate validation window so a cached set outlives every
// legitimate submission for its test id.
type QuestionCache interface {
	SetTest(ctx context.Context, testID string, questionIDs []string) error
	GetTest(ctx context.Context, testID string) ([]string, error)
	DeleteTest(ctx context.Context, testID string) error
}

type questionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuestionCache creates a new question-set cache
func NewQuestionCache(client *redis.Client) QuestionCache {
	return &questionCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *questionCache) key(testID string) string {
	return fmt.Sprintf("test:%s:questions", testID)
}

func (c *questionCache) SetTest(ctx context.Context, testID string, questionIDs []string) error {
	data, err := json.Marshal(questionIDs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(testID), data, c.ttl).Err()
}

func (c *questionCache) GetTest(ctx context.Context, testID string) ([]string, error) {
	data, err := c.client.Get(ctx, c.key(testID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *questionCache) DeleteTest(ctx context.Context, testID string) error {
	return c.client.Del(ctx, c.key(testID)).Err()
}
