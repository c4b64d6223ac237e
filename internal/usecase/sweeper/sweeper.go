// Package sweeper reclaims expired holds and repairs booking deals that fell
// out of step with their unit.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/pkg/clock"
	"estate-marketplace/internal/pkg/errs"
	"estate-marketplace/internal/usecase/shared"
)

type Report struct {
	Expired    int
	Skipped    int
	Failed     int
	Reconciled int
}

type Options struct {
	BatchSize   int
	UnitTimeout time.Duration
	// RecordGrace is how old a hold must be before a missing deal is
	// recorded for it; younger holds may still have a booking in flight.
	RecordGrace time.Duration
}

type ExpirySweeper struct {
	repos       shared.Repositories
	dealSync    shared.DealSync
	notifier    shared.Notifier
	invalidator shared.StatsInvalidator
	clock       clock.Clock
	logger      *slog.Logger
	opts        Options
}

func NewExpirySweeper(
	repos shared.Repositories,
	dealSync shared.DealSync,
	notifier shared.Notifier,
	invalidator shared.StatsInvalidator,
	clock clock.Clock,
	logger *slog.Logger,
	opts Options,
) *ExpirySweeper {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.RecordGrace <= 0 {
		opts.RecordGrace = time.Minute
	}
	return &ExpirySweeper{
		repos:       repos,
		dealSync:    dealSync,
		notifier:    notifier,
		invalidator: invalidator,
		clock:       clock,
		logger:      logger,
		opts:        opts,
	}
}

// Run performs one sweep followed by one reconciliation pass.
func (s *ExpirySweeper) Run(ctx context.Context) (Report, error) {
	report, err := s.Sweep(ctx)
	if err != nil {
		return report, err
	}
	reconciled, err := s.Reconcile(ctx)
	report.Reconciled = reconciled
	return report, err
}

// Sweep expires every booked unit whose hold deadline has passed. A failure
// on one unit is logged and the sweep moves on; cancellation is honoured
// between units only.
func (s *ExpirySweeper) Sweep(ctx context.Context) (Report, error) {
	var report Report
	now := s.clock.Now()

	units, err := s.repos.Units().FindExpiredHolds(ctx, unit.StatusBooked, now, s.opts.BatchSize)
	if err != nil {
		return report, errs.Wrap(err, "failed to list expired holds")
	}

	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		expired, err := s.expireOne(ctx, u, now)
		switch {
		case err != nil:
			report.Failed++
			s.logger.Error("failed to expire hold", "unit_id", u.ID(), "error", err)
		case expired:
			report.Expired++
		default:
			report.Skipped++
		}
	}

	if report.Expired+report.Failed > 0 {
		s.logger.Info("expiry sweep finished",
			"expired", report.Expired,
			"skipped", report.Skipped,
			"failed", report.Failed)
	}
	return report, nil
}

// expireOne returns false when another actor moved the unit first.
func (s *ExpirySweeper) expireOne(ctx context.Context, u *unit.Unit, now time.Time) (bool, error) {
	if s.opts.UnitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.UnitTimeout)
		defer cancel()
	}

	hold := u.Hold()
	open, err := s.dealSync.OpenDealOf(ctx, u)
	if err != nil {
		return false, err
	}
	expected := u.StateToken()
	if err := u.Expire(now); err != nil {
		if errs.Is(err, unit.ErrHoldNotExpired) {
			return false, nil
		}
		return false, err
	}
	if err := s.repos.Units().ApplyTransition(ctx, u, expected); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return false, nil
		}
		return false, err
	}

	d, err := s.dealSync.Apply(ctx, open, []deal.Status{deal.StatusPending}, deal.CancelPatch(deal.ReasonExpired, now))
	if err != nil {
		// the unit is already available; reconciliation picks the deal up
		s.logger.Warn("expired hold left an open deal", "unit_id", u.ID(), "error", err)
	}

	s.invalidator.Invalidate(ctx, u.ProjectID())
	event := shared.Event{
		Type:       shared.EventHoldExpired,
		UnitID:     u.ID(),
		ProjectID:  u.ProjectID(),
		Reason:     deal.ReasonExpired,
		OccurredAt: now,
	}
	if hold != nil {
		event.RecipientID = hold.HolderID
	}
	if d != nil {
		id := d.ID()
		event.DealID = &id
	}
	s.notifier.Notify(ctx, event)
	return true, nil
}

// Reconcile repairs open booking deals whose unit has moved on without them,
// then records the deal of any hold that has none.
func (s *ExpirySweeper) Reconcile(ctx context.Context) (int, error) {
	stale, err := s.repos.Deals().FindStale(ctx, s.opts.BatchSize)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list stale deals")
	}

	now := s.clock.Now()
	repaired := 0
	for _, sd := range stale {
		if err := ctx.Err(); err != nil {
			return repaired, err
		}
		patch, ok := reconcilePatch(sd, now)
		if !ok {
			continue
		}
		d, err := s.repos.Deals().UpdateByID(ctx, sd.DealID, []deal.Status{sd.DealStatus}, patch)
		if err != nil {
			s.logger.Error("failed to reconcile deal", "deal_id", sd.DealID, "unit_id", sd.UnitID, "error", err)
			continue
		}
		if d != nil {
			repaired++
			s.logger.Info("deal reconciled", "deal_id", d.ID(), "unit_id", sd.UnitID, "status", d.Status())
		}
	}

	recorded, err := s.recordMissingDeals(ctx, now)
	return repaired + recorded, err
}

func (s *ExpirySweeper) recordMissingDeals(ctx context.Context, now time.Time) (int, error) {
	units, err := s.repos.Units().FindUnrecordedHolds(ctx, now.Add(-s.opts.RecordGrace), s.opts.BatchSize)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list unrecorded holds")
	}

	recorded := 0
	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return recorded, err
		}
		d, err := s.recordDeal(ctx, u, now)
		if err != nil {
			s.logger.Error("failed to record missing deal", "unit_id", u.ID(), "error", err)
			continue
		}
		if d != nil {
			recorded++
			s.logger.Info("missing deal recorded", "deal_id", d.ID(), "unit_id", u.ID(), "status", d.Status())
		}
	}
	return recorded, nil
}

// recordDeal rebuilds the booking deal from the unit's hold. It returns nil
// when a deal was recorded by someone else in the meantime.
func (s *ExpirySweeper) recordDeal(ctx context.Context, u *unit.Unit, now time.Time) (*deal.Deal, error) {
	hold := u.Hold()
	if hold == nil {
		return nil, nil
	}
	p, err := s.repos.Projects().FindByID(ctx, u.ProjectID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load project")
	}

	d, err := deal.NewBooking(u, p.Owner(), now)
	if err != nil {
		return nil, err
	}
	if hold.DepositPaid {
		payment := deal.Payment{Reference: hold.PaymentReference, Amount: hold.DepositAmount, ConfirmedAt: now}
		if err := d.Apply(deal.AcceptPatch(payment, now)); err != nil {
			return nil, err
		}
	}
	if err := d.Apply(deal.NotePatch("recorded by reconciliation", now)); err != nil {
		return nil, err
	}

	if err := s.repos.Deals().Create(ctx, d); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func reconcilePatch(sd shared.StaleDeal, now time.Time) (deal.Patch, bool) {
	if sd.UnitStatus == nil {
		return deal.CancelPatch("unit removed", now), true
	}
	switch *sd.UnitStatus {
	case unit.StatusAvailable:
		return deal.CancelPatch(deal.ReasonReleased, now), true
	case unit.StatusSold:
		return deal.ClosePatch(now), true
	case unit.StatusReserved, unit.StatusUnderContract:
		if sd.DealStatus != deal.StatusPending || sd.PaymentReference == "" {
			return deal.Patch{}, false
		}
		return deal.AcceptPatch(deal.Payment{
			Reference:   sd.PaymentReference,
			Amount:      sd.DepositAmount,
			ConfirmedAt: now,
		}, now), true
	}
	return deal.Patch{}, false
}
