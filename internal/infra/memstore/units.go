package memstore

import (
	"context"
	"slices"
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"

	"github.com/google/uuid"
)

type unitRepo struct{ v view }

func (r unitRepo) Create(ctx context.Context, u *unit.Unit) error {
	return r.v.do(func(st *state) error {
		snap := u.Snapshot()
		if _, ok := st.projects[snap.ProjectID]; !ok {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "project does not exist")
		}
		if _, ok := st.units[snap.ID]; ok {
			return infra.NewRepoErr(infra.KindDuplicateKey, "unit id already exists")
		}
		if numberTaken(st, snap.ProjectID, snap.Details.UnitNumber, uuid.Nil) {
			return infra.NewRepoErr(infra.KindDuplicateKey, "unit number already exists")
		}
		st.units[snap.ID] = unitRecord{snap: snap}
		return nil
	})
}

func (r unitRepo) FindByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error) {
	var found *unit.Unit
	err := r.v.do(func(st *state) error {
		rec, ok := st.units[id]
		if !ok || !rec.live() {
			return infra.NewRepoErr(infra.KindNotFound, "unit not found")
		}
		found = unit.Reconstruct(rec.snap)
		return nil
	})
	return found, err
}

func (r unitRepo) ApplyTransition(ctx context.Context, u *unit.Unit, expected unit.StateToken) error {
	return r.v.do(func(st *state) error {
		rec, ok := st.units[u.ID()]
		if !ok || !rec.live() || rec.snap.Status != expected.Status || rec.snap.Version != expected.Version {
			return infra.NewRepoErr(infra.KindConflict, "unit state changed")
		}
		next := u.Snapshot()
		rec.snap.Status = next.Status
		rec.snap.Hold = next.Hold
		rec.snap.Version = next.Version
		rec.snap.UpdatedAt = next.UpdatedAt
		st.units[u.ID()] = rec
		return nil
	})
}

func (r unitRepo) UpdateDetails(ctx context.Context, u *unit.Unit) error {
	return r.v.do(func(st *state) error {
		rec, ok := st.units[u.ID()]
		if !ok || !rec.live() {
			return infra.NewRepoErr(infra.KindNotFound, "unit not found")
		}
		next := u.Snapshot()
		if numberTaken(st, rec.snap.ProjectID, next.Details.UnitNumber, u.ID()) {
			return infra.NewRepoErr(infra.KindDuplicateKey, "unit number already exists")
		}
		rec.snap.Details = next.Details
		rec.snap.PricePerMeter = next.PricePerMeter
		rec.snap.UpdatedAt = next.UpdatedAt
		st.units[u.ID()] = rec
		return nil
	})
}

func (r unitRepo) Delete(ctx context.Context, id uuid.UUID, expected unit.StateToken, at time.Time) error {
	return r.v.do(func(st *state) error {
		rec, ok := st.units[id]
		if !ok || !rec.live() || rec.snap.Status != unit.StatusAvailable ||
			rec.snap.Status != expected.Status || rec.snap.Version != expected.Version {
			return infra.NewRepoErr(infra.KindConflict, "unit is not deletable")
		}
		rec.deletedAt = &at
		st.units[id] = rec
		return nil
	})
}

func (r unitRepo) IncrementCounters(ctx context.Context, id uuid.UUID, views, inquiries int64) error {
	return r.v.do(func(st *state) error {
		rec, ok := st.units[id]
		if !ok || !rec.live() {
			return infra.NewRepoErr(infra.KindNotFound, "unit not found")
		}
		rec.snap.Views += views
		rec.snap.Inquiries += inquiries
		st.units[id] = rec
		return nil
	})
}

func (r unitRepo) FindExpiredHolds(ctx context.Context, status unit.Status, before time.Time, limit int) ([]*unit.Unit, error) {
	var out []*unit.Unit
	err := r.v.do(func(st *state) error {
		var recs []unitRecord
		for _, rec := range st.units {
			if rec.live() && rec.snap.Status == status && rec.snap.Hold != nil && rec.snap.Hold.ExpiresAt.Before(before) {
				recs = append(recs, rec)
			}
		}
		slices.SortFunc(recs, func(a, b unitRecord) int {
			return a.snap.Hold.ExpiresAt.Compare(b.snap.Hold.ExpiresAt)
		})
		if limit > 0 && len(recs) > limit {
			recs = recs[:limit]
		}
		for _, rec := range recs {
			out = append(out, unit.Reconstruct(rec.snap))
		}
		return nil
	})
	return out, err
}

func (r unitRepo) FindUnrecordedHolds(ctx context.Context, createdBefore time.Time, limit int) ([]*unit.Unit, error) {
	var out []*unit.Unit
	err := r.v.do(func(st *state) error {
		var recs []unitRecord
		for id, rec := range st.units {
			hold := rec.snap.Hold
			if !rec.live() || hold == nil || !hold.CreatedAt.Before(createdBefore) {
				continue
			}
			if rec.snap.Status != unit.StatusBooked && rec.snap.Status != unit.StatusReserved {
				continue
			}
			if _, ok := openBooking(st, id, deal.OpenStatuses); ok {
				continue
			}
			recs = append(recs, rec)
		}
		slices.SortFunc(recs, func(a, b unitRecord) int {
			return a.snap.Hold.CreatedAt.Compare(b.snap.Hold.CreatedAt)
		})
		if limit > 0 && len(recs) > limit {
			recs = recs[:limit]
		}
		for _, rec := range recs {
			out = append(out, unit.Reconstruct(rec.snap))
		}
		return nil
	})
	return out, err
}

func numberTaken(st *state, projectID uuid.UUID, number string, except uuid.UUID) bool {
	for id, rec := range st.units {
		if id != except && rec.live() && rec.snap.ProjectID == projectID && rec.snap.Details.UnitNumber == number {
			return true
		}
	}
	return false
}
