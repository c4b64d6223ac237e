package unit

import (
	"slices"

	"estate-marketplace/internal/pkg/errs"
)

type Transition string

const (
	TransitionHold              Transition = "hold"
	TransitionConfirmDeposit    Transition = "confirm_deposit"
	TransitionCancel            Transition = "cancel"
	TransitionMarkUnderContract Transition = "mark_under_contract"
	TransitionMarkSold          Transition = "mark_sold"
	TransitionExpire            Transition = "expire"
	TransitionDelete            Transition = "delete"
)

type rule struct {
	from   []Status
	to     Status
	reject error
}

// transitions is the single source of truth for the unit state machine.
// Delete has no target status: the unit is removed from the inventory.
var transitions = map[Transition]rule{
	TransitionHold: {
		from:   []Status{StatusAvailable},
		to:     StatusBooked,
		reject: ErrUnitNotAvailable,
	},
	TransitionConfirmDeposit: {
		from:   []Status{StatusBooked},
		to:     StatusReserved,
		reject: ErrNotBooked,
	},
	TransitionCancel: {
		from:   []Status{StatusBooked, StatusReserved},
		to:     StatusAvailable,
		reject: ErrNoActiveBooking,
	},
	TransitionMarkUnderContract: {
		from:   []Status{StatusReserved},
		to:     StatusUnderContract,
		reject: ErrNotReserved,
	},
	TransitionMarkSold: {
		from:   []Status{StatusBooked, StatusReserved, StatusUnderContract},
		to:     StatusSold,
		reject: ErrCannotSell,
	},
	TransitionExpire: {
		from:   []Status{StatusBooked, StatusReserved},
		to:     StatusAvailable,
		reject: ErrNoActiveBooking,
	},
	TransitionDelete: {
		from:   []Status{StatusAvailable},
		reject: ErrUnitInUse,
	},
}

func (t Transition) String() string {
	return string(t)
}

// Sources returns the statuses the transition may start from.
func (t Transition) Sources() []Status {
	return slices.Clone(transitions[t].from)
}

func (t Transition) Target() Status {
	return transitions[t].to
}

// Check returns nil when t is allowed from status, otherwise the classified
// rejection for that transition.
func (t Transition) Check(from Status) error {
	r, ok := transitions[t]
	if !ok {
		return errs.Newf("unknown unit transition %q", t)
	}
	if slices.Contains(r.from, from) {
		return nil
	}
	if from.IsTerminal() && errs.Is(r.reject, errs.ErrInvalidState) {
		return ErrUnitSold
	}
	return r.reject
}
