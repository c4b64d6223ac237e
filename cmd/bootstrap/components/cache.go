package components

import (
	"context"
	"log/slog"
	"time"

	"estate-marketplace/internal/handler/middleware"
	"estate-marketplace/internal/infra/cache"
	"estate-marketplace/internal/pkg/config"
	"estate-marketplace/internal/usecase/queries"
	"estate-marketplace/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		NewStatsCache,
		NewStatsInvalidator,
		NewRateLimiter,
	),
)

// NewRedis returns nil when Redis is disabled.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to redis", "addr", cfg.Redis.Addr)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func NewStatsCache(rdb *redis.Client, cfg config.Config, logger *slog.Logger) queries.StatsCache {
	if rdb == nil {
		return queries.NopStatsCache{}
	}
	return cache.NewStatsCache(rdb, cfg.Redis.StatsTTL, logger)
}

func NewStatsInvalidator(stats queries.StatsCache) shared.StatsInvalidator {
	if inv, ok := stats.(shared.StatsInvalidator); ok {
		return inv
	}
	return shared.NopInvalidator{}
}

// NewRateLimiter returns an untyped nil when throttling is off so the
// middleware can tell.
func NewRateLimiter(rdb *redis.Client, cfg config.Config) middleware.TokenTaker {
	if rdb == nil || !cfg.RateLimit.Enabled {
		return nil
	}
	return cache.NewTokenBucket(rdb, cfg.RateLimit)
}
