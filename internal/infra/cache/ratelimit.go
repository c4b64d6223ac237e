package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"estate-marketplace/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Refill and take happen in one script so concurrent API replicas share a bucket.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

type TokenBucket struct {
	rdb redis.Scripter
	cfg config.RateLimitConfig
}

func NewTokenBucket(rdb redis.Scripter, cfg config.RateLimitConfig) *TokenBucket {
	return &TokenBucket{rdb: rdb, cfg: cfg}
}

func (b *TokenBucket) Capacity() int {
	return b.cfg.Capacity
}

// Take removes one token from the bucket named by key.
func (b *TokenBucket) Take(ctx context.Context, key string, now time.Time) (Decision, error) {
	ttl := int64(b.cfg.TTL / time.Second)
	if ttl < 1 {
		ttl = 1
	}
	vals, err := tokenBucketScript.Run(ctx, b.rdb, []string{b.cfg.Prefix + ":" + key},
		now.UnixMilli(),
		b.cfg.Capacity,
		b.cfg.RefillTokens,
		b.cfg.RefillInterval.Milliseconds(),
		ttl,
	).Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("token bucket script failed: %w", err)
	}
	if len(vals) != 3 {
		return Decision{}, fmt.Errorf("unexpected token bucket result %#v", vals)
	}
	return Decision{
		Allowed:    asInt64(vals[0]) == 1,
		Remaining:  asInt64(vals[1]),
		RetryAfter: time.Duration(asInt64(vals[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
