package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"estate-marketplace/internal/handler/httperr"
	"estate-marketplace/internal/infra/cache"
	"estate-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limit exceeded")

type TokenTaker interface {
	Take(ctx context.Context, key string, now time.Time) (cache.Decision, error)
	Capacity() int
}

// RateLimit takes one token per request from the caller's bucket. A nil
// limiter disables it; limiter errors let the request through.
func RateLimit(limiter TokenTaker, logger *slog.Logger) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if id, ok := GetUserID(c); ok {
			key = "user:" + id.String()
		}
		key += ":" + c.FullPath()

		decision, err := limiter.Take(c.Request.Context(), key, time.Now())
		if err != nil {
			logger.Warn("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Capacity()))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests")
			return
		}
		c.Next()
	}
}
