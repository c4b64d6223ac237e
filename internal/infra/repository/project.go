package repository

import (
	"context"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/infra/repository/converter"
	sqlc "estate-marketplace/internal/infra/sqlc/generated"
	"estate-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProjectQueries interface {
	GetProject(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Projects, error)
	AdjustProjectUnitCount(ctx context.Context, db sqlc.DBTX, arg sqlc.AdjustProjectUnitCountParams) (int64, error)
}

type ProjectRepository struct {
	queries ProjectQueries
	db      sqlc.DBTX
	retries int
}

func NewProjectRepository(queries ProjectQueries, db sqlc.DBTX, retries int) *ProjectRepository {
	return &ProjectRepository{
		queries: queries,
		db:      db,
		retries: retries,
	}
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	row, err := withRetry(ctx, r.retries, func() (sqlc.Projects, error) {
		return r.queries.GetProject(ctx, r.db, id)
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("project not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find project by ID", err)
	}
	return converter.ProjectFromRow(row), nil
}

func (r *ProjectRepository) AdjustUnitCount(ctx context.Context, id uuid.UUID, delta int) error {
	n, err := withRetry(ctx, r.retries, func() (int64, error) {
		return r.queries.AdjustProjectUnitCount(ctx, r.db, sqlc.AdjustProjectUnitCountParams{
			Delta: converter.IntToInt32(delta),
			ID:    id,
		})
	})
	if err != nil {
		return infra.WrapRepoErr("failed to adjust project unit count", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "project not found")
	}
	return nil
}
