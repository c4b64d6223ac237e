package components

import (
	"fmt"
	"log/slog"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/infra/memstore"
	"estate-marketplace/internal/infra/readstore"
	sqlc "estate-marketplace/internal/infra/sqlc/generated"
	"estate-marketplace/internal/infra/uow"
	"estate-marketplace/internal/pkg/config"
	"estate-marketplace/internal/usecase/queries"
	"estate-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStorage,
		func(s Storage) shared.UnitOfWork { return s.UoW },
		func(s Storage) shared.Repositories { return s.UoW },
		func(s Storage) queries.UnitReadStore { return s.Reads },
	),
)

// Storage is the write and read side of one storage driver.
type Storage struct {
	UoW   shared.UnitOfWork
	Reads queries.UnitReadStore
	// Memory is set only for the memory driver.
	Memory *memstore.Store
}

func NewStorage(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (Storage, error) {
	if cfg.DB.Driver == config.StorageDriverMemory || pool == nil {
		store := memstore.New()
		if cfg.DB.SeedOwnerID != "" {
			ownerID, err := uuid.Parse(cfg.DB.SeedOwnerID)
			if err != nil {
				return Storage{}, fmt.Errorf("invalid MEMORY_SEED_OWNER_ID: %w", err)
			}
			demo := project.Project{
				ID:      uuid.New(),
				Name:    "Demo Project",
				Kind:    project.KindProject,
				OwnerID: &ownerID,
				AddedBy: ownerID,
			}
			store.PutProject(demo)
			logger.Info("seeded demo project", "project_id", demo.ID, "owner_id", ownerID)
		}
		return Storage{UoW: store, Reads: memstore.NewReadStore(store), Memory: store}, nil
	}

	q := sqlc.New()
	return Storage{
		UoW:   uow.NewPostgresUoW(pool, q, cfg.DB.MaxRetries),
		Reads: readstore.NewUnitReadStore(q, pool),
	}, nil
}
