package repository

import (
	"context"
	"time"

	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/infra/repository/converter"
	sqlc "estate-marketplace/internal/infra/sqlc/generated"
	"estate-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UnitWriteQueries interface {
	CreateUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUnitParams) error
	GetUnit(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Units, error)
	TransitionUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionUnitParams) (int64, error)
	UpdateUnitDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUnitDetailsParams) (int64, error)
	SoftDeleteUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.SoftDeleteUnitParams) (int64, error)
	IncrementUnitCounters(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementUnitCountersParams) (int64, error)
	ListExpiredHolds(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredHoldsParams) ([]sqlc.Units, error)
	ListUnrecordedHolds(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUnrecordedHoldsParams) ([]sqlc.Units, error)
}

type UnitRepository struct {
	queries UnitWriteQueries
	db      sqlc.DBTX
	retries int
}

func NewUnitRepository(queries UnitWriteQueries, db sqlc.DBTX, retries int) *UnitRepository {
	return &UnitRepository{
		queries: queries,
		db:      db,
		retries: retries,
	}
}

func (r *UnitRepository) Create(ctx context.Context, u *unit.Unit) error {
	_, err := withRetry(ctx, r.retries, func() (struct{}, error) {
		return struct{}{}, r.queries.CreateUnit(ctx, r.db, converter.UnitToCreateParams(u))
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create unit", err)
	}
	return nil
}

func (r *UnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error) {
	row, err := withRetry(ctx, r.retries, func() (sqlc.Units, error) {
		return r.queries.GetUnit(ctx, r.db, id)
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find unit by ID", err)
	}

	u, err := converter.UnitFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode unit", err)
	}
	return u, nil
}

func (r *UnitRepository) ApplyTransition(ctx context.Context, u *unit.Unit, expected unit.StateToken) error {
	n, err := withRetry(ctx, r.retries, func() (int64, error) {
		return r.queries.TransitionUnit(ctx, r.db, converter.UnitToTransitionParams(u, expected))
	})
	if err != nil {
		return infra.WrapRepoErr("failed to transition unit", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindConflict, "unit state changed")
	}
	return nil
}

func (r *UnitRepository) UpdateDetails(ctx context.Context, u *unit.Unit) error {
	n, err := withRetry(ctx, r.retries, func() (int64, error) {
		return r.queries.UpdateUnitDetails(ctx, r.db, converter.UnitToDetailsParams(u))
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update unit", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "unit not found")
	}
	return nil
}

func (r *UnitRepository) Delete(ctx context.Context, id uuid.UUID, expected unit.StateToken, at time.Time) error {
	if expected.Status != unit.StatusAvailable {
		return infra.NewRepoErr(infra.KindConflict, "unit is not deletable")
	}
	n, err := withRetry(ctx, r.retries, func() (int64, error) {
		return r.queries.SoftDeleteUnit(ctx, r.db, sqlc.SoftDeleteUnitParams{
			DeletedAt:       pgconv.TimeToPgtype(at),
			ID:              id,
			ExpectedVersion: expected.Version,
		})
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete unit", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindConflict, "unit is not deletable")
	}
	return nil
}

func (r *UnitRepository) IncrementCounters(ctx context.Context, id uuid.UUID, views, inquiries int64) error {
	n, err := withRetry(ctx, r.retries, func() (int64, error) {
		return r.queries.IncrementUnitCounters(ctx, r.db, sqlc.IncrementUnitCountersParams{
			Views:     views,
			Inquiries: inquiries,
			ID:        id,
		})
	})
	if err != nil {
		return infra.WrapRepoErr("failed to increment unit counters", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "unit not found")
	}
	return nil
}

func (r *UnitRepository) FindExpiredHolds(ctx context.Context, status unit.Status, before time.Time, limit int) ([]*unit.Unit, error) {
	rows, err := withRetry(ctx, r.retries, func() ([]sqlc.Units, error) {
		return r.queries.ListExpiredHolds(ctx, r.db, sqlc.ListExpiredHoldsParams{
			Status:   status.String(),
			Before:   pgconv.TimeToPgtype(before),
			RowLimit: rowLimit(limit),
		})
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired holds", err)
	}
	return unitsFromRows(rows)
}

func (r *UnitRepository) FindUnrecordedHolds(ctx context.Context, createdBefore time.Time, limit int) ([]*unit.Unit, error) {
	rows, err := withRetry(ctx, r.retries, func() ([]sqlc.Units, error) {
		return r.queries.ListUnrecordedHolds(ctx, r.db, sqlc.ListUnrecordedHoldsParams{
			CreatedBefore: pgconv.TimeToPgtype(createdBefore),
			RowLimit:      rowLimit(limit),
		})
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unrecorded holds", err)
	}
	return unitsFromRows(rows)
}

func unitsFromRows(rows []sqlc.Units) ([]*unit.Unit, error) {
	out := make([]*unit.Unit, 0, len(rows))
	for _, row := range rows {
		u, err := converter.UnitFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode unit", err)
		}
		out = append(out, u)
	}
	return out, nil
}

// rowLimit maps "no limit" (<= 0) to the largest LIMIT the column type allows.
func rowLimit(limit int) int32 {
	if limit <= 0 {
		return 1<<31 - 1
	}
	return converter.IntToInt32(limit)
}
