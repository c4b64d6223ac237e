package repository

import (
	"context"
	"slices"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/infra/repository/converter"
	sqlc "estate-marketplace/internal/infra/sqlc/generated"
	"estate-marketplace/internal/pkg/pgconv"
	"estate-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type DealWriteQueries interface {
	CreateDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealParams) error
	GetDeal(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	GetOpenBookingDeal(ctx context.Context, db sqlc.DBTX, unitID uuid.UUID) (sqlc.Deals, error)
	UpdateOpenBookingDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOpenBookingDealParams) (sqlc.Deals, error)
	UpdateDealByID(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDealByIDParams) (sqlc.Deals, error)
	ListStaleBookingDeals(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListStaleBookingDealsRow, error)
}

type DealRepository struct {
	queries DealWriteQueries
	db      sqlc.DBTX
	retries int
}

func NewDealRepository(queries DealWriteQueries, db sqlc.DBTX, retries int) *DealRepository {
	return &DealRepository{
		queries: queries,
		db:      db,
		retries: retries,
	}
}

func (r *DealRepository) Create(ctx context.Context, d *deal.Deal) error {
	params, err := converter.DealToCreateParams(d)
	if err != nil {
		return infra.WrapRepoErr("failed to encode deal", err)
	}
	_, err = withRetry(ctx, r.retries, func() (struct{}, error) {
		return struct{}{}, r.queries.CreateDeal(ctx, r.db, params)
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create deal", err)
	}
	return nil
}

func (r *DealRepository) UpdateByUnit(ctx context.Context, unitID uuid.UUID, statusFilter []deal.Status, patch deal.Patch) (*deal.Deal, error) {
	cols, err := converter.DealPatchToColumns(patch)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode deal patch", err)
	}
	allowed := movableFrom(statusFilter, patch.Status)

	row, err := withRetry(ctx, r.retries, func() (sqlc.Deals, error) {
		return r.queries.UpdateOpenBookingDeal(ctx, r.db, cols.ByUnitParams(unitID, allowed))
	})
	if err != nil {
		if !pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("failed to update booking deal", err)
		}
		return nil, r.explainMiss(statusFilter, allowed, func() (sqlc.Deals, error) {
			return r.queries.GetOpenBookingDeal(ctx, r.db, unitID)
		})
	}
	return decodeDeal(row)
}

func (r *DealRepository) UpdateByID(ctx context.Context, dealID uuid.UUID, statusFilter []deal.Status, patch deal.Patch) (*deal.Deal, error) {
	cols, err := converter.DealPatchToColumns(patch)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode deal patch", err)
	}
	allowed := movableFrom(statusFilter, patch.Status)

	row, err := withRetry(ctx, r.retries, func() (sqlc.Deals, error) {
		return r.queries.UpdateDealByID(ctx, r.db, cols.ByIDParams(dealID, allowed))
	})
	if err != nil {
		if !pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("failed to update deal", err)
		}
		return nil, r.explainMiss(statusFilter, allowed, func() (sqlc.Deals, error) {
			return r.queries.GetDeal(ctx, r.db, dealID)
		})
	}
	return decodeDeal(row)
}

// explainMiss turns a zero-row update into ErrInvalidTransition when a deal
// matched the caller's filter but its status cannot move to the target.
func (r *DealRepository) explainMiss(statusFilter, allowed []deal.Status, load func() (sqlc.Deals, error)) error {
	if len(allowed) == len(statusFilter) {
		return nil
	}
	row, err := load()
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil
		}
		return infra.WrapRepoErr("failed to load deal", err)
	}
	if slices.Contains(statusFilter, deal.Status(row.Status)) {
		return deal.ErrInvalidTransition
	}
	return nil
}

func movableFrom(statusFilter []deal.Status, target deal.Status) []deal.Status {
	if target == "" {
		return statusFilter
	}
	allowed := make([]deal.Status, 0, len(statusFilter))
	for _, s := range statusFilter {
		if s == target || s.CanMoveTo(target) {
			allowed = append(allowed, s)
		}
	}
	return allowed
}

func (r *DealRepository) FindOpenByUnit(ctx context.Context, unitID uuid.UUID) (*deal.Deal, error) {
	row, err := withRetry(ctx, r.retries, func() (sqlc.Deals, error) {
		return r.queries.GetOpenBookingDeal(ctx, r.db, unitID)
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no open booking deal", err)
		}
		return nil, infra.WrapRepoErr("failed to find open booking deal", err)
	}
	return decodeDeal(row)
}

func (r *DealRepository) FindStale(ctx context.Context, limit int) ([]shared.StaleDeal, error) {
	rows, err := withRetry(ctx, r.retries, func() ([]sqlc.ListStaleBookingDealsRow, error) {
		return r.queries.ListStaleBookingDeals(ctx, r.db, rowLimit(limit))
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale deals", err)
	}

	out := make([]shared.StaleDeal, 0, len(rows))
	for _, row := range rows {
		deposit, err := pgconv.DecimalFromNumeric(row.HoldDepositAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode deposit", err)
		}
		sd := shared.StaleDeal{
			DealID:           row.DealID,
			UnitID:           row.UnitID,
			DealStatus:       deal.Status(row.DealStatus),
			PaymentReference: pgconv.StringFromPgtype(row.HoldPaymentReference),
			DepositAmount:    deposit,
		}
		if !row.UnitDeletedAt.Valid {
			status := unit.Status(row.UnitStatus)
			sd.UnitStatus = &status
		}
		out = append(out, sd)
	}
	return out, nil
}

func decodeDeal(row sqlc.Deals) (*deal.Deal, error) {
	d, err := converter.DealFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode deal", err)
	}
	return d, nil
}
