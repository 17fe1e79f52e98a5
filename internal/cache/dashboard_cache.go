package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"commitscale/internal/model"
)

// DashboardCache keeps per-company aggregates for the live dashboard: a
// running count of scored results per commitment level. Stored as a Redis
// hash so increments stay atomic across concurrent submissions.
type DashboardCache interface {
	IncrementLevel(ctx context.Context, companyID string, level model.Level) error
	GetLevelDistribution(ctx context.Context, companyID string) (map[model.Level]int, error)
	Reset(ctx context.Context, companyID string) error
}

type dashboardCache struct {
	client *redis.Client
}

// NewDashboardCache creates a new dashboard cache
func NewDashboardCache(client *redis.Client) DashboardCache {
	return &dashboardCache{client: client}
}

func (c *dashboardCache) key(companyID string) string {
	return fmt.Sprintf("company:%s:levels", companyID)
}

func (c *dashboardCache) IncrementLevel(ctx context.Context, companyID string, level model.Level) error {
	return c.client.HIncrBy(ctx, c.key(companyID), string(level), 1).Err()
}

func (c *dashboardCache) GetLevelDistribution(ctx context.Context, companyID string) (map[model.Level]int, error) {
	fields, err := c.client.HGetAll(ctx, c.key(companyID)).Result()
	if err != nil {
		return nil, err
	}

	dist := make(map[model.Level]int, len(fields))
	for level, count := range fields {
		n, err := strconv.Atoi(count)
		if err != nil {
			continue
		}
		dist[model.Level(level)] = n
	}
	return dist, nil
}

func (c *dashboardCache) Reset(ctx context.Context, companyID string) error {
	return c.client.Del(ctx, c.key(companyID)).Err()
}
