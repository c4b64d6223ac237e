package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventUnitBooked        EventType = "unit.booked"
	EventDepositConfirmed  EventType = "unit.deposit_confirmed"
	EventBookingCancelled  EventType = "unit.booking_cancelled"
	EventUnitUnderContract EventType = "unit.under_contract"
	EventUnitSold          EventType = "unit.sold"
	EventVisitRequested    EventType = "unit.visit_requested"
	EventHoldExpired       EventType = "unit.hold_expired"
)

type Event struct {
	Type        EventType        `json:"type"`
	UnitID      uuid.UUID        `json:"unitId"`
	ProjectID   uuid.UUID        `json:"projectId"`
	DealID      *uuid.UUID       `json:"dealId,omitempty"`
	ActorID     uuid.UUID        `json:"actorId"`
	RecipientID uuid.UUID        `json:"recipientId"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	OccurredAt  time.Time        `json:"occurredAt"`
}

// Notifier is fire-and-forget: implementations never block the caller on
// delivery and never report delivery failures back.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// StatsInvalidator drops cached project statistics after inventory changes.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, projectID uuid.UUID)
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Event) {}

type NopInvalidator struct{}

func (NopInvalidator) Invalidate(context.Context, uuid.UUID) {}
