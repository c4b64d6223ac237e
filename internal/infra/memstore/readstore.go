package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReadStore serves the query side from the same in-memory state.
type ReadStore struct {
	s *Store
}

func NewReadStore(s *Store) *ReadStore {
	return &ReadStore{s: s}
}

func (r *ReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UnitView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.st.units[id]
	if !ok || !rec.live() {
		return nil, infra.NewRepoErr(infra.KindNotFound, "unit not found")
	}
	v := r.viewOf(rec)
	return &v, nil
}

func (r *ReadStore) ListByProject(ctx context.Context, projectID uuid.UUID, status *unit.Status) ([]*queries.UnitView, error) {
	return r.Search(ctx, queries.UnitFilters{ProjectID: &projectID, Status: status}, nil, 0)
}

func (r *ReadStore) Search(ctx context.Context, f queries.UnitFilters, after *queries.Position, limit int) ([]*queries.UnitView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var recs []unitRecord
	for _, rec := range r.s.st.units {
		if rec.live() && matches(rec.snap, f) && isAfter(rec.snap, after) {
			recs = append(recs, rec)
		}
	}
	slices.SortFunc(recs, func(a, b unitRecord) int {
		if c := b.snap.CreatedAt.UnixMicro() - a.snap.CreatedAt.UnixMicro(); c != 0 {
			return cmp.Compare(c, 0)
		}
		return strings.Compare(b.snap.ID.String(), a.snap.ID.String())
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	out := make([]*queries.UnitView, 0, len(recs))
	for _, rec := range recs {
		v := r.viewOf(rec)
		out = append(out, &v)
	}
	return out, nil
}

func (r *ReadStore) StatusAggregates(ctx context.Context, projectID uuid.UUID) ([]queries.StatusAggregate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	byStatus := make(map[unit.Status]*queries.StatusAggregate)
	for _, rec := range r.s.st.units {
		if !rec.live() || rec.snap.ProjectID != projectID {
			continue
		}
		price := rec.snap.Details.Price
		agg, ok := byStatus[rec.snap.Status]
		if !ok {
			agg = &queries.StatusAggregate{Status: rec.snap.Status, Value: decimal.Zero, MinPrice: price, MaxPrice: price}
			byStatus[rec.snap.Status] = agg
		}
		agg.Count++
		agg.Value = agg.Value.Add(price)
		agg.MinPrice = decimal.Min(agg.MinPrice, price)
		agg.MaxPrice = decimal.Max(agg.MaxPrice, price)
	}

	out := make([]queries.StatusAggregate, 0, len(byStatus))
	for _, s := range unit.Statuses {
		if agg, ok := byStatus[s]; ok {
			out = append(out, *agg)
		}
	}
	return out, nil
}

func (r *ReadStore) viewOf(rec unitRecord) queries.UnitView {
	return queries.ViewOfUnit(unit.Reconstruct(rec.snap), r.s.st.projects[rec.snap.ProjectID].Name)
}

func matches(s unit.Snapshot, f queries.UnitFilters) bool {
	d := s.Details
	switch {
	case f.ProjectID != nil && s.ProjectID != *f.ProjectID:
		return false
	case f.Status != nil && s.Status != *f.Status:
		return false
	case f.Type != "" && !strings.EqualFold(d.Type, f.Type):
		return false
	case f.MinPrice != nil && d.Price.LessThan(*f.MinPrice):
		return false
	case f.MaxPrice != nil && d.Price.GreaterThan(*f.MaxPrice):
		return false
	case f.MinArea != nil && d.Area.LessThan(*f.MinArea):
		return false
	case f.MaxArea != nil && d.Area.GreaterThan(*f.MaxArea):
		return false
	case f.Bedrooms != nil && d.Bedrooms != *f.Bedrooms:
		return false
	case f.Floor != nil && d.Floor != *f.Floor:
		return false
	}
	return true
}

func isAfter(s unit.Snapshot, pos *queries.Position) bool {
	if pos == nil {
		return true
	}
	created, at := s.CreatedAt.UnixMicro(), pos.CreatedAt.UnixMicro()
	if created != at {
		return created < at
	}
	return strings.Compare(s.ID.String(), pos.ID.String()) < 0
}
