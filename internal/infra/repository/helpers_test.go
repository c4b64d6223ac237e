//go:build unit

package repository_test

import (
	"context"
	"time"

	"estate-marketplace/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

// safeToRetryErr reports a failure that happened before the server saw the statement.
type safeToRetryErr struct{}

func (safeToRetryErr) Error() string     { return "connection reset before send" }
func (safeToRetryErr) SafeToRetry() bool { return true }

func numeric(v int64) pgtype.Numeric {
	return pgconv.DecimalToNumeric(decimal.NewFromInt(v))
}

func pgtypeTime(t time.Time) pgtype.Timestamptz {
	return pgconv.TimeToPgtype(t)
}
