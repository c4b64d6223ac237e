//go:build unit

package repository_test

import (
	"context"
	"testing"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/infra/repository"
	sqlc "estate-marketplace/internal/infra/sqlc/generated"
	"estate-marketplace/internal/pkg/pgconv"
	repositorymock "estate-marketplace/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProjectRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockProjectQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewProjectRepository(mockQueries, mockDB, 0)

	t.Run("success: owner falls back to added-by", func(t *testing.T) {
		id, addedBy := uuid.New(), uuid.New()
		mockQueries.EXPECT().GetProject(ctx, mockDB, id).Return(sqlc.Projects{
			ID:        id,
			Name:      "Marina Heights",
			Kind:      "project",
			OwnerID:   pgconv.UUIDPtrToPgtype(nil),
			AddedBy:   addedBy,
			UnitCount: 12,
		}, nil)

		got, err := repo.FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, project.KindProject, got.Kind)
		assert.Equal(t, addedBy, got.Owner())
		assert.Equal(t, 12, got.UnitCount)
	})

	t.Run("error: not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries.EXPECT().GetProject(ctx, mockDB, id).Return(sqlc.Projects{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestProjectRepository_AdjustUnitCount(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		rows       int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "error: project missing", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: count would go negative", err: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockProjectQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewProjectRepository(mockQueries, mockDB, 0)
			mockQueries.EXPECT().AdjustProjectUnitCount(ctx, mockDB, sqlc.AdjustProjectUnitCountParams{Delta: -1, ID: id}).Return(tc.rows, tc.err)

			err := repo.AdjustUnitCount(ctx, id, -1)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
