//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestProject inserts a project owned by ownerID and returns its id.
func CreateTestProject(t *testing.T, db DBLike, name, kind string, ownerID uuid.UUID) uuid.UUID {
	t.Helper()

	projectID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO projects (id, name, kind, owner_id, added_by) VALUES ($1, $2, $3, $4, $4)",
		projectID, name, kind, ownerID)
	require.NoError(t, err)
	return projectID
}

func ProjectUnitCount(t *testing.T, db DBLike, projectID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT unit_count FROM projects WHERE id = $1", projectID).Scan(&count)
	require.NoError(t, err)
	return count
}

func OpenBookingDeals(t *testing.T, db DBLike, unitID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM deals WHERE unit_id = $1 AND kind = 'booking' AND status IN ('pending', 'accepted')",
		unitID).Scan(&count)
	require.NoError(t, err)
	return count
}

// ExpireHold moves a unit's hold deadline into the past.
func ExpireHold(t *testing.T, db DBLike, unitID uuid.UUID) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE units SET hold_expires_at = now() - interval '1 hour' WHERE id = $1 AND hold_expires_at IS NOT NULL",
		unitID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "unit has no hold to expire")
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema except the migration log.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public' AND tablename <> 'schema_migrations'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
