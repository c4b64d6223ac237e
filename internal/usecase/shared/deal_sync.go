package shared

import (
	"context"
	"log/slog"
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/pkg/errs"
)

var ErrDealSyncFailed = errs.New("deal update failed after retries")

// DealSync applies the second write of a transition (the deal update) with
// bounded retries. The unit transition has already committed at that point,
// so a final failure is logged and left to the sweeper's reconciliation pass.
//
// The deal to update is resolved before the unit transition, while the hold
// it records is still in place, and is then addressed by id only.
type DealSync struct {
	Deals    DealRepository
	Attempts int
	Backoff  time.Duration
	// Timeout bounds writes that run after the caller's context is gone.
	Timeout time.Duration
	Logger  *slog.Logger
}

// Detach returns a context that ignores cancellation of ctx but keeps its
// values, bounded by Timeout.
func (s DealSync) Detach(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.Timeout <= 0 {
		return detached, func() {}
	}
	return context.WithTimeout(detached, s.Timeout)
}

// OpenDealOf returns the open booking deal that records u's current hold, or
// nil when there is none. A deal belonging to another buyer is not u's.
func (s DealSync) OpenDealOf(ctx context.Context, u *unit.Unit) (*deal.Deal, error) {
	d, err := s.Deals.FindOpenByUnit(ctx, u.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to load booking deal")
	}
	if hold := u.Hold(); hold != nil && d.BuyerID() != hold.HolderID {
		s.logger().Warn("open booking deal does not match the hold",
			"unit_id", u.ID(),
			"deal_id", d.ID(),
			"holder_id", hold.HolderID,
			"buyer_id", d.BuyerID())
		return nil, nil
	}
	return d, nil
}

// Apply patches target while its status is in filter. A nil target means the
// hold was never recorded; that is left to reconciliation too.
func (s DealSync) Apply(ctx context.Context, target *deal.Deal, filter []deal.Status, patch deal.Patch) (*deal.Deal, error) {
	if target == nil {
		s.logger().Warn("no booking deal to update; left for reconciliation", "target_status", patch.Status)
		return nil, nil
	}

	ctx, cancel := s.Detach(ctx)
	defer cancel()

	attempts := max(s.Attempts, 1)
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		d, err := s.Deals.UpdateByID(ctx, target.ID(), filter, patch)
		if err == nil {
			return d, nil
		}
		lastErr = err
		if errs.Is(err, deal.ErrInvalidTransition) {
			break
		}

		if attempt == attempts-1 {
			break
		}
		// Wait before retrying with linear backoff
		waitTime := time.Duration(attempt+1) * s.Backoff
		s.logger().Warn("retrying deal update",
			"deal_id", target.ID(),
			"unit_id", target.UnitID(),
			"attempt", attempt+1,
			"wait_time", waitTime,
			"error", err)

		select {
		case <-ctx.Done():
			s.logger().Error("deal update abandoned; left for reconciliation",
				"deal_id", target.ID(),
				"unit_id", target.UnitID(),
				"target_status", patch.Status,
				"error", ctx.Err())
			return nil, errs.Mark(ctx.Err(), ErrDealSyncFailed)
		case <-time.After(waitTime):
		}
	}

	s.logger().Error("deal update failed; left for reconciliation",
		"deal_id", target.ID(),
		"unit_id", target.UnitID(),
		"target_status", patch.Status,
		"error", lastErr)
	return nil, errs.Mark(lastErr, ErrDealSyncFailed)
}

func (s DealSync) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
