package queries

import (
	"context"
	"log/slog"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/pkg/errs"
	"estate-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitFilters struct {
	ProjectID *uuid.UUID
	Status    *unit.Status
	Type      string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	MinArea   *decimal.Decimal
	MaxArea   *decimal.Decimal
	Bedrooms  *int
	Floor     *int
}

type UnitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, status *unit.Status) ([]*UnitView, error)
	// Search returns up to limit units ordered by (createdAt, id) descending,
	// strictly after the given position when one is set.
	Search(ctx context.Context, filters UnitFilters, after *Position, limit int) ([]*UnitView, error)
	StatusAggregates(ctx context.Context, projectID uuid.UUID) ([]StatusAggregate, error)
}

type UnitQueries interface {
	GetUnit(ctx context.Context, id uuid.UUID) (*UnitView, error)
	ListProjectUnits(ctx context.Context, projectID uuid.UUID, status *unit.Status) ([]*UnitView, error)
	SearchUnits(ctx context.Context, filters UnitFilters, cursor *Cursor, limit int) ([]*UnitView, *Cursor, error)
	ProjectStats(ctx context.Context, projectID uuid.UUID) (*ProjectStats, error)
}

type unitQueriesImpl struct {
	store  UnitReadStore
	repos  shared.Repositories
	cache  StatsCache
	logger *slog.Logger
}

func NewUnitQueries(store UnitReadStore, repos shared.Repositories, cache StatsCache, logger *slog.Logger) UnitQueries {
	if cache == nil {
		cache = NopStatsCache{}
	}
	return &unitQueriesImpl{store: store, repos: repos, cache: cache, logger: logger}
}

func (q *unitQueriesImpl) GetUnit(ctx context.Context, id uuid.UUID) (*UnitView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, unit.ErrUnitNotFound
		}
		return nil, errs.Wrap(err, "failed to load unit")
	}

	// A lost view count must never fail the read.
	if err := q.repos.Units().IncrementCounters(ctx, id, 1, 0); err != nil {
		q.logger.Warn("failed to record unit view", "unit_id", id, "error", err)
		return v, nil
	}
	v.Views++
	return v, nil
}

func (q *unitQueriesImpl) ListProjectUnits(ctx context.Context, projectID uuid.UUID, status *unit.Status) ([]*UnitView, error) {
	if _, err := q.findProject(ctx, projectID); err != nil {
		return nil, err
	}
	rows, err := q.store.ListByProject(ctx, projectID, status)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list project units")
	}
	return rows, nil
}

func (q *unitQueriesImpl) SearchUnits(ctx context.Context, filters UnitFilters, cursor *Cursor, limit int) ([]*UnitView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var after *Position
	if cursor != nil && cursor.After != "" {
		createdAt, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		after = &Position{CreatedAt: createdAt, ID: id}
	}

	rows, err := q.store.Search(ctx, filters, after, limit+1)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to search units")
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *unitQueriesImpl) ProjectStats(ctx context.Context, projectID uuid.UUID) (*ProjectStats, error) {
	if cached, ok := q.cache.Get(ctx, projectID); ok {
		return cached, nil
	}
	if _, err := q.findProject(ctx, projectID); err != nil {
		return nil, err
	}

	rows, err := q.store.StatusAggregates(ctx, projectID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to aggregate project units")
	}
	stats := FoldStats(projectID, rows)
	q.cache.Set(ctx, &stats)
	return &stats, nil
}

func (q *unitQueriesImpl) findProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := q.repos.Projects().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, errs.Wrap(err, "failed to load project")
	}
	return p, nil
}
