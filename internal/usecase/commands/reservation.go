package commands

import (
	"context"
	"log/slog"
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/pkg/clock"
	"estate-marketplace/internal/pkg/errs"
	"estate-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationCommands interface {
	Book(ctx context.Context, unitID uuid.UUID, actor user.Actor, requestedDeposit decimal.Decimal) (*ReservationResult, error)
	ConfirmDeposit(ctx context.Context, unitID uuid.UUID, actor user.Actor, paymentReference string) (*ReservationResult, error)
	CancelBooking(ctx context.Context, unitID uuid.UUID, actor user.Actor, reason string) (*ReservationResult, error)
	MarkUnderContract(ctx context.Context, unitID uuid.UUID, actor user.Actor) (*ReservationResult, error)
	MarkSold(ctx context.Context, unitID uuid.UUID, actor user.Actor) (*ReservationResult, error)
	RequestVisit(ctx context.Context, unitID uuid.UUID, actor user.Actor, contact deal.Contact) (*ReservationResult, error)
}

type reservationCommandsImpl struct {
	repos       shared.Repositories
	load        loader
	dealSync    shared.DealSync
	policy      unit.HoldPolicy
	notifier    shared.Notifier
	invalidator shared.StatsInvalidator
	clock       clock.Clock
	logger      *slog.Logger
}

func NewReservationCommands(
	repos shared.Repositories,
	dealSync shared.DealSync,
	policy unit.HoldPolicy,
	notifier shared.Notifier,
	invalidator shared.StatsInvalidator,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		repos:       repos,
		load:        loader{repos: repos},
		dealSync:    dealSync,
		policy:      policy,
		notifier:    notifier,
		invalidator: invalidator,
		clock:       clock,
		logger:      logger,
	}
}

func (r *reservationCommandsImpl) Book(ctx context.Context, unitID uuid.UUID, actor user.Actor, requestedDeposit decimal.Decimal) (*ReservationResult, error) {
	u, p, err := r.load.unitAndProject(ctx, unitID)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	expected := u.StateToken()
	if err := u.PlaceHold(actor.ID, requestedDeposit, r.policy, now); err != nil {
		return nil, err
	}
	if err := applyTransition(ctx, r.repos.Units(), u, expected); err != nil {
		return nil, err
	}

	// The hold is committed; its deal must be recorded or the hold undone
	// even if the caller goes away.
	ctx, cancel := r.dealSync.Detach(ctx)
	defer cancel()

	d, err := r.recordBooking(ctx, u, p, now)
	if err != nil {
		r.releaseHold(ctx, u)
		return nil, err
	}

	bumpInquiries(ctx, r.repos.Units(), r.logger, u.ID())
	r.invalidator.Invalidate(ctx, p.ID)

	hold := u.Hold()
	r.notifier.Notify(ctx, shared.Event{
		Type:        shared.EventUnitBooked,
		UnitID:      u.ID(),
		ProjectID:   p.ID,
		DealID:      dealID(d),
		ActorID:     actor.ID,
		RecipientID: p.Owner(),
		Amount:      &hold.DepositAmount,
		OccurredAt:  now,
	})

	r.logger.Info("unit booked",
		"unit_id", u.ID(),
		"holder_id", actor.ID,
		"deposit", hold.DepositAmount.String(),
		"expires_at", hold.ExpiresAt)

	return &ReservationResult{Unit: u, Project: p, Deal: d}, nil
}

// recordBooking creates the pending booking deal. A leftover open booking
// deal can only be stale once the hold CAS has been won, so it is cancelled
// and creation retried once.
func (r *reservationCommandsImpl) recordBooking(ctx context.Context, u *unit.Unit, p *project.Project, now time.Time) (*deal.Deal, error) {
	d, err := deal.NewBooking(u, p.Owner(), now)
	if err != nil {
		return nil, err
	}

	err = r.repos.Deals().Create(ctx, d)
	if infra.IsKind(err, infra.KindDuplicateKey) {
		r.logger.Warn("cancelling stale open booking deal", "unit_id", u.ID())
		if _, serr := r.repos.Deals().UpdateByUnit(ctx, u.ID(), deal.OpenStatuses, deal.CancelPatch(deal.ReasonReleased, now)); serr != nil {
			return nil, errs.Wrap(serr, "failed to clear stale booking deal")
		}
		err = r.repos.Deals().Create(ctx, d)
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to record booking deal")
	}
	return d, nil
}

// releaseHold undoes a hold whose deal could not be recorded. A failure here
// leaves the hold to expire through the sweeper.
func (r *reservationCommandsImpl) releaseHold(ctx context.Context, u *unit.Unit) {
	expected := u.StateToken()
	if err := u.Cancel(r.clock.Now()); err != nil {
		r.logger.Error("failed to release hold after deal failure", "unit_id", u.ID(), "error", err)
		return
	}
	if err := applyTransition(ctx, r.repos.Units(), u, expected); err != nil {
		r.logger.Error("failed to release hold after deal failure", "unit_id", u.ID(), "error", err)
	}
}

func (r *reservationCommandsImpl) ConfirmDeposit(ctx context.Context, unitID uuid.UUID, actor user.Actor, paymentReference string) (*ReservationResult, error) {
	u, p, err := r.load.unitAndProject(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if err := p.Authorize(actor); err != nil {
		return nil, err
	}
	open, err := r.dealSync.OpenDealOf(ctx, u)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	expected := u.StateToken()
	if err := u.ConfirmDeposit(paymentReference, now); err != nil {
		return nil, err
	}
	if err := applyTransition(ctx, r.repos.Units(), u, expected); err != nil {
		return nil, err
	}

	ctx, cancel := r.dealSync.Detach(ctx)
	defer cancel()

	hold := u.Hold()
	payment := deal.Payment{Reference: hold.PaymentReference, Amount: hold.DepositAmount, ConfirmedAt: now}
	d, _ := r.dealSync.Apply(ctx, open, []deal.Status{deal.StatusPending}, deal.AcceptPatch(payment, now))

	r.invalidator.Invalidate(ctx, p.ID)
	r.notifier.Notify(ctx, shared.Event{
		Type:        shared.EventDepositConfirmed,
		UnitID:      u.ID(),
		ProjectID:   p.ID,
		DealID:      dealID(d),
		ActorID:     actor.ID,
		RecipientID: hold.HolderID,
		Amount:      &hold.DepositAmount,
		OccurredAt:  now,
	})

	return &ReservationResult{Unit: u, Project: p, Deal: d}, nil
}

func (r *reservationCommandsImpl) CancelBooking(ctx context.Context, unitID uuid.UUID, actor user.Actor, reason string) (*ReservationResult, error) {
	u, p, err := r.load.unitAndProject(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if !p.CanManage(actor) && !u.IsHeldBy(actor.ID) {
		return nil, ErrCancelForbidden
	}
	open, err := r.dealSync.OpenDealOf(ctx, u)
	if err != nil {
		return nil, err
	}

	holder := uuid.Nil
	if h := u.Hold(); h != nil {
		holder = h.HolderID
	}

	now := r.clock.Now()
	expected := u.StateToken()
	if err := u.Cancel(now); err != nil {
		return nil, err
	}
	if err := applyTransition(ctx, r.repos.Units(), u, expected); err != nil {
		return nil, err
	}

	ctx, cancel := r.dealSync.Detach(ctx)
	defer cancel()

	d, _ := r.dealSync.Apply(ctx, open, deal.OpenStatuses, deal.CancelPatch(reason, now))

	r.invalidator.Invalidate(ctx, p.ID)
	// The side that did not cancel is the one to tell.
	recipient := p.Owner()
	if !actor.Is(holder) {
		recipient = holder
	}
	r.notifier.Notify(ctx, shared.Event{
		Type:        shared.EventBookingCancelled,
		UnitID:      u.ID(),
		ProjectID:   p.ID,
		DealID:      dealID(d),
		ActorID:     actor.ID,
		RecipientID: recipient,
		Reason:      reason,
		OccurredAt:  now,
	})

	return &ReservationResult{Unit: u, Project: p, Deal: d}, nil
}

func (r *reservationCommandsImpl) MarkUnderContract(ctx context.Context, unitID uuid.UUID, actor user.Actor) (*ReservationResult, error) {
	u, p, err := r.load.unitAndProject(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if err := p.Authorize(actor); err != nil {
		return nil, err
	}
	open, err := r.dealSync.OpenDealOf(ctx, u)
	if err != nil {
		return nil, err
	}

	holder := uuid.Nil
	if h := u.Hold(); h != nil {
		holder = h.HolderID
	}

	now := r.clock.Now()
	expected := u.StateToken()
	if err := u.MarkUnderContract(now); err != nil {
		return nil, err
	}
	if err := applyTransition(ctx, r.repos.Units(), u, expected); err != nil {
		return nil, err
	}

	ctx, cancel := r.dealSync.Detach(ctx)
	defer cancel()

	d, _ := r.dealSync.Apply(ctx, open, []deal.Status{deal.StatusAccepted}, deal.NotePatch("under contract", now))

	r.invalidator.Invalidate(ctx, p.ID)
	r.notifier.Notify(ctx, shared.Event{
		Type:        shared.EventUnitUnderContract,
		UnitID:      u.ID(),
		ProjectID:   p.ID,
		DealID:      dealID(d),
		ActorID:     actor.ID,
		RecipientID: holder,
		OccurredAt:  now,
	})

	return &ReservationResult{Unit: u, Project: p, Deal: d}, nil
}

func (r *reservationCommandsImpl) MarkSold(ctx context.Context, unitID uuid.UUID, actor user.Actor) (*ReservationResult, error) {
	u, p, err := r.load.unitAndProject(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if err := p.Authorize(actor); err != nil {
		return nil, err
	}
	open, err := r.dealSync.OpenDealOf(ctx, u)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	expected := u.StateToken()
	if err := u.MarkSold(now); err != nil {
		return nil, err
	}
	if err := applyTransition(ctx, r.repos.Units(), u, expected); err != nil {
		return nil, err
	}

	ctx, cancel := r.dealSync.Detach(ctx)
	defer cancel()

	d, _ := r.dealSync.Apply(ctx, open, deal.OpenStatuses, deal.ClosePatch(now))

	r.invalidator.Invalidate(ctx, p.ID)
	recipient := uuid.Nil
	if open != nil {
		recipient = open.BuyerID()
	}
	r.notifier.Notify(ctx, shared.Event{
		Type:        shared.EventUnitSold,
		UnitID:      u.ID(),
		ProjectID:   p.ID,
		DealID:      dealID(d),
		ActorID:     actor.ID,
		RecipientID: recipient,
		OccurredAt:  now,
	})

	r.logger.Info("unit sold", "unit_id", u.ID(), "actor_id", actor.ID)
	return &ReservationResult{Unit: u, Project: p, Deal: d}, nil
}

func (r *reservationCommandsImpl) RequestVisit(ctx context.Context, unitID uuid.UUID, actor user.Actor, contact deal.Contact) (*ReservationResult, error) {
	u, p, err := r.load.unitAndProject(ctx, unitID)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	d, err := deal.NewVisitRequest(u, actor.ID, p.Owner(), contact, now)
	if err != nil {
		return nil, err
	}
	if err := r.repos.Deals().Create(ctx, d); err != nil {
		return nil, errs.Wrap(err, "failed to record visit request")
	}

	bumpInquiries(ctx, r.repos.Units(), r.logger, u.ID())
	r.notifier.Notify(ctx, shared.Event{
		Type:        shared.EventVisitRequested,
		UnitID:      u.ID(),
		ProjectID:   p.ID,
		DealID:      dealID(d),
		ActorID:     actor.ID,
		RecipientID: p.Owner(),
		OccurredAt:  now,
	})

	return &ReservationResult{Unit: u, Project: p, Deal: d}, nil
}
