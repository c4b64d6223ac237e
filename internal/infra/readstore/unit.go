package readstore

import (
	"context"

	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/infra/repository/converter"
	sqlc "estate-marketplace/internal/infra/sqlc/generated"
	"estate-marketplace/internal/pkg/pgconv"
	"estate-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

type UnitViewQueries interface {
	GetUnitView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUnitViewRow, error)
	ListProjectUnitViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListProjectUnitViewsParams) ([]sqlc.ListProjectUnitViewsRow, error)
	SearchUnitViews(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchUnitViewsParams) ([]sqlc.SearchUnitViewsRow, error)
	UnitStatusAggregates(ctx context.Context, db sqlc.DBTX, projectID uuid.UUID) ([]sqlc.UnitStatusAggregatesRow, error)
}

type UnitReadStore struct {
	queries UnitViewQueries
	db      sqlc.DBTX
}

func NewUnitReadStore(queries UnitViewQueries, db sqlc.DBTX) *UnitReadStore {
	return &UnitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UnitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UnitView, error) {
	row, err := r.queries.GetUnitView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find unit view by ID", err)
	}
	return viewOf(row)
}

func (r *UnitReadStore) ListByProject(ctx context.Context, projectID uuid.UUID, status *unit.Status) ([]*queries.UnitView, error) {
	rows, err := r.queries.ListProjectUnitViews(ctx, r.db, sqlc.ListProjectUnitViewsParams{
		ProjectID: projectID,
		Status:    statusParam(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list project units", err)
	}

	result := make([]*queries.UnitView, 0, len(rows))
	for _, row := range rows {
		v, err := viewOf(sqlc.GetUnitViewRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *UnitReadStore) Search(ctx context.Context, f queries.UnitFilters, after *queries.Position, limit int) ([]*queries.UnitView, error) {
	params := sqlc.SearchUnitViewsParams{
		ProjectID: pgconv.UUIDPtrToPgtype(f.ProjectID),
		Status:    statusParam(f.Status),
		UnitType:  pgconv.StringToPgtype(f.Type),
		MinPrice:  pgconv.DecimalPtrToNumeric(f.MinPrice),
		MaxPrice:  pgconv.DecimalPtrToNumeric(f.MaxPrice),
		MinArea:   pgconv.DecimalPtrToNumeric(f.MinArea),
		MaxArea:   pgconv.DecimalPtrToNumeric(f.MaxArea),
		Bedrooms:  pgconv.IntPtrToPgtype(f.Bedrooms),
		Floor:     pgconv.IntPtrToPgtype(f.Floor),
		RowLimit:  1<<31 - 1,
	}
	if limit > 0 {
		params.RowLimit = converter.IntToInt32(limit)
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.SearchUnitViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search units", err)
	}

	result := make([]*queries.UnitView, 0, len(rows))
	for _, row := range rows {
		v, err := viewOf(sqlc.GetUnitViewRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *UnitReadStore) StatusAggregates(ctx context.Context, projectID uuid.UUID) ([]queries.StatusAggregate, error) {
	rows, err := r.queries.UnitStatusAggregates(ctx, r.db, projectID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate unit statuses", err)
	}

	result := make([]queries.StatusAggregate, 0, len(rows))
	for _, row := range rows {
		agg, err := aggregateOf(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode aggregate", err)
		}
		result = append(result, agg)
	}
	return result, nil
}

func aggregateOf(row sqlc.UnitStatusAggregatesRow) (queries.StatusAggregate, error) {
	agg := queries.StatusAggregate{Status: unit.Status(row.Status), Count: row.UnitCount}
	var err error
	if agg.Value, err = pgconv.DecimalFromNumeric(row.TotalValue); err != nil {
		return agg, err
	}
	if agg.MinPrice, err = pgconv.DecimalFromNumeric(row.MinPrice); err != nil {
		return agg, err
	}
	agg.MaxPrice, err = pgconv.DecimalFromNumeric(row.MaxPrice)
	return agg, err
}

func statusParam(status *unit.Status) pgtype.Text {
	if status == nil {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(status.String())
}

// viewOf decodes the unit columns through the domain so derived view fields
// stay identical to the in-memory store.
func viewOf(row sqlc.GetUnitViewRow) (*queries.UnitView, error) {
	var units sqlc.Units
	if err := copier.Copy(&units, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map unit view row", err)
	}
	u, err := converter.UnitFromRow(units)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode unit view", err)
	}
	v := queries.ViewOfUnit(u, row.ProjectName)
	return &v, nil
}
