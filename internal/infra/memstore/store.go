// Package memstore is an in-process storage driver. It honours the same
// conditional-write contract as the Postgres adapters and backs unit tests
// and STORAGE_DRIVER=memory.
package memstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type unitRecord struct {
	snap      unit.Snapshot
	deletedAt *time.Time
}

func (r unitRecord) live() bool { return r.deletedAt == nil }

type state struct {
	projects map[uuid.UUID]project.Project
	units    map[uuid.UUID]unitRecord
	deals    map[uuid.UUID]deal.Snapshot
}

func (st *state) clone() *state {
	return &state{
		projects: maps.Clone(st.projects),
		units:    maps.Clone(st.units),
		deals:    maps.Clone(st.deals),
	}
}

type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store {
	return &Store{st: &state{
		projects: make(map[uuid.UUID]project.Project),
		units:    make(map[uuid.UUID]unitRecord),
		deals:    make(map[uuid.UUID]deal.Snapshot),
	}}
}

// PutProject registers or replaces a project. Projects are managed outside
// this service, so this is the only way they enter the store.
func (s *Store) PutProject(p project.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.projects[p.ID] = p
}

// view runs fn against the store either inside a Within (already locked) or
// under the store lock.
type view struct {
	s  *Store
	tx *state
}

func (v view) do(fn func(st *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return fn(v.s.st)
}

func (s *Store) Units() shared.UnitRepository       { return unitRepo{view{s: s}} }
func (s *Store) Deals() shared.DealRepository       { return dealRepo{view{s: s}} }
func (s *Store) Projects() shared.ProjectRepository { return projectRepo{view{s: s}} }

// Within stages every write on a copy and swaps it in only when fn succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.st.clone()
	if err := fn(ctx, txRepos{view{s: s, tx: staged}}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = staged
	return nil
}

type txRepos struct{ v view }

func (t txRepos) Units() shared.UnitRepository       { return unitRepo{t.v} }
func (t txRepos) Deals() shared.DealRepository       { return dealRepo{t.v} }
func (t txRepos) Projects() shared.ProjectRepository { return projectRepo{t.v} }
