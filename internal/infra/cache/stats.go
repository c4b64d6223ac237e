package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"estate-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const statsKeyPrefix = "stats:project:"

// StatsCache keeps project statistics in Redis for a short TTL. Every Redis
// failure is logged and reported as a miss.
type StatsCache struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewStatsCache(rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *StatsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsCache{rdb: rdb, ttl: ttl, logger: logger}
}

func statsKey(projectID uuid.UUID) string {
	return statsKeyPrefix + projectID.String()
}

func (c *StatsCache) Get(ctx context.Context, projectID uuid.UUID) (*queries.ProjectStats, bool) {
	raw, err := c.rdb.Get(ctx, statsKey(projectID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("stats cache read failed", "project_id", projectID, "error", err)
		}
		return nil, false
	}

	var stats queries.ProjectStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.logger.Warn("discarding undecodable stats entry", "project_id", projectID, "error", err)
		c.Invalidate(ctx, projectID)
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, stats *queries.ProjectStats) {
	if stats == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		c.logger.Warn("failed to encode project stats", "project_id", stats.ProjectID, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, statsKey(stats.ProjectID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", "project_id", stats.ProjectID, "error", err)
	}
}

func (c *StatsCache) Invalidate(ctx context.Context, projectID uuid.UUID) {
	if err := c.rdb.Del(ctx, statsKey(projectID)).Err(); err != nil {
		c.logger.Warn("stats cache invalidation failed", "project_id", projectID, "error", err)
	}
}
