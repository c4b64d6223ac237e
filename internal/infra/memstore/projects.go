package memstore

import (
	"context"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/infra"

	"github.com/google/uuid"
)

type projectRepo struct{ v view }

func (r projectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var found *project.Project
	err := r.v.do(func(st *state) error {
		p, ok := st.projects[id]
		if !ok {
			return infra.NewRepoErr(infra.KindNotFound, "project not found")
		}
		found = &p
		return nil
	})
	return found, err
}

func (r projectRepo) AdjustUnitCount(ctx context.Context, id uuid.UUID, delta int) error {
	return r.v.do(func(st *state) error {
		p, ok := st.projects[id]
		if !ok {
			return infra.NewRepoErr(infra.KindNotFound, "project not found")
		}
		if p.UnitCount+delta < 0 {
			return infra.NewRepoErr(infra.KindDBFailure, "unit count would become negative")
		}
		p.UnitCount += delta
		st.projects[id] = p
		return nil
	})
}
