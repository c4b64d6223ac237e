package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const retryBackoff = 50 * time.Millisecond

// withRetry reruns a single autocommit statement while the failure provably
// happened before the server saw it. Inside a transaction retries is 0.
func withRetry[T any](ctx context.Context, retries int, op func() (T, error)) (T, error) {
	for attempt := 0; ; attempt++ {
		res, err := op()
		if err == nil || attempt >= retries || !pgconn.SafeToRetry(err) {
			return res, err
		}

		slog.Warn("retrying statement after transient error",
			"attempt", attempt+1,
			"error", err.Error())

		select {
		case <-ctx.Done():
			return res, err
		case <-time.After(time.Duration(attempt+1) * retryBackoff):
		}
	}
}
