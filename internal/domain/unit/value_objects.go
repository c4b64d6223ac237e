package unit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// DefaultDownPaymentPercent applies when a unit has no payment plan.
	DefaultDownPaymentPercent = decimal.NewFromInt(5)

	DefaultHoldTTL = 48 * time.Hour
)

type PaymentPlan struct {
	MinDownPaymentPercent decimal.Decimal
	InstallmentYears      int
}

func (p PaymentPlan) Validate() error {
	if p.MinDownPaymentPercent.IsNegative() || p.MinDownPaymentPercent.GreaterThan(hundred) {
		return ErrInvalidDownPayment
	}
	if p.InstallmentYears < 0 {
		return ErrInvalidInstallmentYears
	}
	return nil
}

// Hold is the booking claim on a unit. It exists iff the unit is booked or reserved.
type Hold struct {
	HolderID         uuid.UUID
	CreatedAt        time.Time
	ExpiresAt        time.Time
	DepositAmount    decimal.Decimal
	DepositPaid      bool
	PaymentReference string
}

// IsExpired is strict: a hold is still valid at exactly ExpiresAt.
func (h Hold) IsExpired(now time.Time) bool {
	return now.After(h.ExpiresAt)
}

// HoldPolicy carries the tunables for new holds.
type HoldPolicy struct {
	TTL                       time.Duration
	DefaultDownPaymentPercent decimal.Decimal
}

func DefaultHoldPolicy() HoldPolicy {
	return HoldPolicy{
		TTL:                       DefaultHoldTTL,
		DefaultDownPaymentPercent: DefaultDownPaymentPercent,
	}
}

// StateToken identifies the exact state a transition was computed from.
// Storage applies a transition only if the stored unit still matches it.
type StateToken struct {
	Status  Status
	Version int64
}

// PricePerMeter rounds price/area to the nearest whole currency unit.
func PricePerMeter(price, area decimal.Decimal) decimal.Decimal {
	if !area.IsPositive() {
		return decimal.Zero
	}
	return price.Div(area).Round(0)
}

// DefaultDeposit is round(price * percent / 100), where percent comes from the
// payment plan when present and fallbackPercent otherwise.
func DefaultDeposit(price decimal.Decimal, plan *PaymentPlan, fallbackPercent decimal.Decimal) decimal.Decimal {
	percent := fallbackPercent
	if plan != nil && plan.MinDownPaymentPercent.IsPositive() {
		percent = plan.MinDownPaymentPercent
	}
	return price.Mul(percent).Div(hundred).Round(0)
}
