//go:build unit

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra/cache"
	"estate-marketplace/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsCache(t *testing.T) (*cache.StatsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cache.NewStatsCache(rdb, time.Minute, logger), mr
}

func sampleStats(projectID uuid.UUID) *queries.ProjectStats {
	stats := queries.FoldStats(projectID, []queries.StatusAggregate{
		{
			Status:   unit.StatusAvailable,
			Count:    2,
			Value:    decimal.NewFromInt(3_000_000),
			MinPrice: decimal.NewFromInt(1_000_000),
			MaxPrice: decimal.NewFromInt(2_000_000),
		},
	})
	return &stats
}

func TestStatsCache_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty cache", func(t *testing.T) {
		c, _ := newStatsCache(t)

		got, ok := c.Get(ctx, uuid.New())

		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("round trip", func(t *testing.T) {
		c, mr := newStatsCache(t)
		projectID := uuid.New()

		c.Set(ctx, sampleStats(projectID))
		got, ok := c.Get(ctx, projectID)

		require.True(t, ok)
		assert.Equal(t, projectID, got.ProjectID)
		assert.EqualValues(t, 2, got.Total)
		assert.True(t, decimal.NewFromInt(3_000_000).Equal(got.TotalValue))
		assert.True(t, decimal.NewFromInt(1_500_000).Equal(got.PriceRange.Avg))
		assert.EqualValues(t, 2, got.ByStatus[unit.StatusAvailable].Count)
		assert.True(t, mr.Exists("stats:project:"+projectID.String()))
	})

	t.Run("entry expires after ttl", func(t *testing.T) {
		c, mr := newStatsCache(t)
		projectID := uuid.New()

		c.Set(ctx, sampleStats(projectID))
		mr.FastForward(2 * time.Minute)

		_, ok := c.Get(ctx, projectID)
		assert.False(t, ok)
	})

	t.Run("garbage entry is dropped", func(t *testing.T) {
		c, mr := newStatsCache(t)
		projectID := uuid.New()
		require.NoError(t, mr.Set("stats:project:"+projectID.String(), "{not json"))

		_, ok := c.Get(ctx, projectID)

		assert.False(t, ok)
		assert.False(t, mr.Exists("stats:project:"+projectID.String()))
	})

	t.Run("redis down is a miss", func(t *testing.T) {
		c, mr := newStatsCache(t)
		mr.Close()

		_, ok := c.Get(ctx, uuid.New())
		assert.False(t, ok)
		c.Set(ctx, sampleStats(uuid.New()))
	})
}

func TestStatsCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newStatsCache(t)
	projectID := uuid.New()
	other := uuid.New()

	c.Set(ctx, sampleStats(projectID))
	c.Set(ctx, sampleStats(other))
	c.Invalidate(ctx, projectID)

	_, ok := c.Get(ctx, projectID)
	assert.False(t, ok)
	_, ok = c.Get(ctx, other)
	assert.True(t, ok, "other projects keep their entry")
}
