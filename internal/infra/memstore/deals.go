package memstore

import (
	"context"
	"slices"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type dealRepo struct{ v view }

func (r dealRepo) Create(ctx context.Context, d *deal.Deal) error {
	return r.v.do(func(st *state) error {
		snap := d.Snapshot()
		if _, ok := st.units[snap.UnitID]; !ok {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "unit does not exist")
		}
		if snap.Kind == deal.KindBooking && snap.Status.IsOpen() {
			if _, ok := openBooking(st, snap.UnitID, deal.OpenStatuses); ok {
				return infra.NewRepoErr(infra.KindDuplicateKey, "unit already has an open booking deal")
			}
		}
		st.deals[snap.ID] = snap
		return nil
	})
}

func (r dealRepo) UpdateByUnit(ctx context.Context, unitID uuid.UUID, statusFilter []deal.Status, patch deal.Patch) (*deal.Deal, error) {
	var updated *deal.Deal
	err := r.v.do(func(st *state) error {
		snap, ok := openBooking(st, unitID, statusFilter)
		if !ok {
			return nil
		}
		d, err := apply(st, snap, patch)
		updated = d
		return err
	})
	return updated, err
}

func (r dealRepo) UpdateByID(ctx context.Context, dealID uuid.UUID, statusFilter []deal.Status, patch deal.Patch) (*deal.Deal, error) {
	var updated *deal.Deal
	err := r.v.do(func(st *state) error {
		snap, ok := st.deals[dealID]
		if !ok || !slices.Contains(statusFilter, snap.Status) {
			return nil
		}
		d, err := apply(st, snap, patch)
		updated = d
		return err
	})
	return updated, err
}

func (r dealRepo) FindOpenByUnit(ctx context.Context, unitID uuid.UUID) (*deal.Deal, error) {
	var found *deal.Deal
	err := r.v.do(func(st *state) error {
		snap, ok := openBooking(st, unitID, deal.OpenStatuses)
		if !ok {
			return infra.NewRepoErr(infra.KindNotFound, "no open booking deal")
		}
		found = deal.Reconstruct(snap)
		return nil
	})
	return found, err
}

func (r dealRepo) FindStale(ctx context.Context, limit int) ([]shared.StaleDeal, error) {
	var out []shared.StaleDeal
	err := r.v.do(func(st *state) error {
		for _, snap := range st.deals {
			if snap.Kind != deal.KindBooking || !snap.Status.IsOpen() {
				continue
			}
			sd := shared.StaleDeal{DealID: snap.ID, UnitID: snap.UnitID, DealStatus: snap.Status}
			rec, ok := st.units[snap.UnitID]
			if ok && rec.live() {
				status := rec.snap.Status
				if !isStale(status, snap.Status) {
					continue
				}
				sd.UnitStatus = &status
				if h := rec.snap.Hold; h != nil {
					sd.PaymentReference = h.PaymentReference
					sd.DepositAmount = h.DepositAmount
				}
			}
			out = append(out, sd)
			if limit > 0 && len(out) == limit {
				break
			}
		}
		return nil
	})
	return out, err
}

func isStale(unitStatus unit.Status, dealStatus deal.Status) bool {
	switch unitStatus {
	case unit.StatusAvailable, unit.StatusSold:
		return true
	case unit.StatusReserved:
		return dealStatus == deal.StatusPending
	}
	return false
}

func openBooking(st *state, unitID uuid.UUID, statusFilter []deal.Status) (deal.Snapshot, bool) {
	for _, snap := range st.deals {
		if snap.UnitID == unitID && snap.Kind == deal.KindBooking && snap.Status.IsOpen() && slices.Contains(statusFilter, snap.Status) {
			return snap, true
		}
	}
	return deal.Snapshot{}, false
}

func apply(st *state, snap deal.Snapshot, patch deal.Patch) (*deal.Deal, error) {
	d := deal.Reconstruct(snap)
	if err := d.Apply(patch); err != nil {
		return nil, err
	}
	st.deals[snap.ID] = d.Snapshot()
	return d, nil
}
