//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"estate-marketplace/internal/handler/middleware"
	"estate-marketplace/internal/infra/cache"
	"estate-marketplace/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaker struct {
	mu       sync.Mutex
	keys     []string
	decision cache.Decision
	err      error
}

func (f *fakeTaker) Take(_ context.Context, key string, _ time.Time) (cache.Decision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return f.decision, f.err
}

func (f *fakeTaker) Capacity() int { return 5 }

func newRateLimitedRouter(limiter middleware.TokenTaker, userID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.POST("/units/:id/book", func(c *gin.Context) {
		if userID != nil {
			c.Set("user_id", *userID)
		}
		c.Next()
	}, middleware.RateLimit(limiter, logger), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed request carries quota headers", func(t *testing.T) {
		id := uuid.New()
		taker := &fakeTaker{decision: cache.Decision{Allowed: true, Remaining: 4}}
		router := newRateLimitedRouter(taker, &id)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/units/"+uuid.NewString()+"/book", nil, "")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		httptest.AssertQuotaHeaders(t, rec, 5, 4)
		require.Len(t, taker.keys, 1)
		assert.Equal(t, "user:"+id.String()+":/units/:id/book", taker.keys[0])
	})

	t.Run("anonymous callers are keyed by ip", func(t *testing.T) {
		taker := &fakeTaker{decision: cache.Decision{Allowed: true, Remaining: 1}}
		router := newRateLimitedRouter(taker, nil)

		httptest.PerformRequest(t, router, http.MethodPost, "/units/"+uuid.NewString()+"/book", nil, "")

		require.Len(t, taker.keys, 1)
		assert.Contains(t, taker.keys[0], "ip:")
	})

	t.Run("blocked request is 429 with Retry-After rounded up", func(t *testing.T) {
		id := uuid.New()
		taker := &fakeTaker{decision: cache.Decision{Allowed: false, Remaining: 0, RetryAfter: 1200 * time.Millisecond}}
		router := newRateLimitedRouter(taker, &id)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/units/"+uuid.NewString()+"/book", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "2"})
		httptest.AssertQuotaHeaders(t, rec, 5, 0)
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		taker := &fakeTaker{err: errors.New("redis: connection refused")}
		router := newRateLimitedRouter(taker, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/units/"+uuid.NewString()+"/book", nil, "")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		httptest.AssertHeaders(t, rec, map[string]string{"X-RateLimit-Limit": "", "Retry-After": ""})
	})

	t.Run("nil limiter is a pass-through", func(t *testing.T) {
		router := newRateLimitedRouter(nil, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/units/"+uuid.NewString()+"/book", nil, "")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})
}
