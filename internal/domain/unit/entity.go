package unit

import (
	"strings"
	"time"

	"estate-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Details are the descriptive, owner-editable attributes of a unit.
type Details struct {
	UnitNumber  string
	Type        string
	Floor       int
	Bedrooms    int
	Bathrooms   int
	Price       decimal.Decimal
	Area        decimal.Decimal
	PaymentPlan *PaymentPlan
}

func (d *Details) normalize() {
	d.UnitNumber = strings.TrimSpace(d.UnitNumber)
	d.Type = strings.ToLower(strings.TrimSpace(d.Type))
}

func (d Details) Validate() error {
	if d.UnitNumber == "" {
		return ErrUnitNumberRequired
	}
	if d.Type == "" {
		return ErrTypeRequired
	}
	if d.Bedrooms < 0 || d.Bathrooms < 0 {
		return ErrInvalidRoomCount
	}
	if d.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if !d.Area.IsPositive() {
		return ErrInvalidArea
	}
	if d.PaymentPlan != nil {
		if err := d.PaymentPlan.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Patch lists optional edits to Details. Status and hold are never patchable.
type Patch struct {
	UnitNumber  *string
	Type        *string
	Floor       *int
	Bedrooms    *int
	Bathrooms   *int
	Price       *decimal.Decimal
	Area        *decimal.Decimal
	PaymentPlan *PaymentPlan
}

func (p Patch) IsEmpty() bool {
	return p.UnitNumber == nil && p.Type == nil && p.Floor == nil && p.Bedrooms == nil &&
		p.Bathrooms == nil && p.Price == nil && p.Area == nil && p.PaymentPlan == nil
}

func (p Patch) apply(d Details) Details {
	d.UnitNumber = patch.Coalesce(p.UnitNumber, d.UnitNumber)
	d.Type = patch.Coalesce(p.Type, d.Type)
	d.Floor = patch.Coalesce(p.Floor, d.Floor)
	d.Bedrooms = patch.Coalesce(p.Bedrooms, d.Bedrooms)
	d.Bathrooms = patch.Coalesce(p.Bathrooms, d.Bathrooms)
	d.Price = patch.Coalesce(p.Price, d.Price)
	d.Area = patch.Coalesce(p.Area, d.Area)
	if p.PaymentPlan != nil {
		plan := *p.PaymentPlan
		d.PaymentPlan = &plan
	}
	return d
}

type Unit struct {
	id            uuid.UUID
	projectID     uuid.UUID
	details       Details
	pricePerMeter decimal.Decimal
	status        Status
	hold          *Hold
	version       int64
	views         int64
	inquiries     int64
	createdAt     time.Time
	updatedAt     time.Time
}

// Snapshot is the full persisted state of a unit.
type Snapshot struct {
	ID            uuid.UUID
	ProjectID     uuid.UUID
	Details       Details
	PricePerMeter decimal.Decimal
	Status        Status
	Hold          *Hold
	Version       int64
	Views         int64
	Inquiries     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func New(projectID uuid.UUID, details Details, now time.Time) (*Unit, error) {
	details.normalize()
	if err := details.Validate(); err != nil {
		return nil, err
	}
	return &Unit{
		id:            uuid.New(),
		projectID:     projectID,
		details:       details,
		pricePerMeter: PricePerMeter(details.Price, details.Area),
		status:        StatusAvailable,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(s Snapshot) *Unit {
	var hold *Hold
	if s.Hold != nil {
		h := *s.Hold
		hold = &h
	}
	return &Unit{
		id:            s.ID,
		projectID:     s.ProjectID,
		details:       s.Details,
		pricePerMeter: s.PricePerMeter,
		status:        s.Status,
		hold:          hold,
		version:       s.Version,
		views:         s.Views,
		inquiries:     s.Inquiries,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (u *Unit) Snapshot() Snapshot {
	return Snapshot{
		ID:            u.id,
		ProjectID:     u.projectID,
		Details:       u.details,
		PricePerMeter: u.pricePerMeter,
		Status:        u.status,
		Hold:          u.Hold(),
		Version:       u.version,
		Views:         u.views,
		Inquiries:     u.inquiries,
		CreatedAt:     u.createdAt,
		UpdatedAt:     u.updatedAt,
	}
}

func (u *Unit) ID() uuid.UUID                  { return u.id }
func (u *Unit) ProjectID() uuid.UUID           { return u.projectID }
func (u *Unit) Details() Details               { return u.details }
func (u *Unit) Price() decimal.Decimal         { return u.details.Price }
func (u *Unit) Area() decimal.Decimal          { return u.details.Area }
func (u *Unit) PricePerMeter() decimal.Decimal { return u.pricePerMeter }
func (u *Unit) Status() Status                 { return u.status }
func (u *Unit) Version() int64                 { return u.version }
func (u *Unit) Views() int64                   { return u.views }
func (u *Unit) Inquiries() int64               { return u.inquiries }
func (u *Unit) CreatedAt() time.Time           { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time           { return u.updatedAt }

// Hold returns a copy of the current hold, or nil.
func (u *Unit) Hold() *Hold {
	if u.hold == nil {
		return nil
	}
	h := *u.hold
	return &h
}

func (u *Unit) StateToken() StateToken {
	return StateToken{Status: u.status, Version: u.version}
}

func (u *Unit) IsHeldBy(userID uuid.UUID) bool {
	return u.hold != nil && userID != uuid.Nil && u.hold.HolderID == userID
}

// Edit applies a patch to the descriptive fields and recomputes pricePerMeter.
func (u *Unit) Edit(p Patch, now time.Time) error {
	next := p.apply(u.details)
	next.normalize()
	if err := next.Validate(); err != nil {
		return err
	}
	u.details = next
	u.pricePerMeter = PricePerMeter(next.Price, next.Area)
	u.updatedAt = now
	return nil
}

// PlaceHold books the unit for holder. A positive requestedDeposit overrides
// the payment plan default.
func (u *Unit) PlaceHold(holder uuid.UUID, requestedDeposit decimal.Decimal, policy HoldPolicy, now time.Time) error {
	if requestedDeposit.IsNegative() {
		return ErrInvalidDeposit
	}
	if err := TransitionHold.Check(u.status); err != nil {
		return err
	}
	deposit := requestedDeposit
	if !deposit.IsPositive() {
		deposit = DefaultDeposit(u.details.Price, u.details.PaymentPlan, policy.DefaultDownPaymentPercent)
	}
	ttl := policy.TTL
	if ttl <= 0 {
		ttl = DefaultHoldTTL
	}
	u.hold = &Hold{
		HolderID:      holder,
		CreatedAt:     now,
		ExpiresAt:     now.Add(ttl),
		DepositAmount: deposit,
	}
	u.advance(TransitionHold, now)
	return nil
}

func (u *Unit) ConfirmDeposit(paymentReference string, now time.Time) error {
	paymentReference = strings.TrimSpace(paymentReference)
	if paymentReference == "" {
		return ErrPaymentReference
	}
	if err := TransitionConfirmDeposit.Check(u.status); err != nil {
		return err
	}
	if u.hold == nil || u.hold.IsExpired(now) {
		return ErrHoldExpired
	}
	u.hold.DepositPaid = true
	u.hold.PaymentReference = paymentReference
	u.advance(TransitionConfirmDeposit, now)
	return nil
}

func (u *Unit) Cancel(now time.Time) error {
	if err := TransitionCancel.Check(u.status); err != nil {
		return err
	}
	u.hold = nil
	u.advance(TransitionCancel, now)
	return nil
}

func (u *Unit) MarkUnderContract(now time.Time) error {
	if err := TransitionMarkUnderContract.Check(u.status); err != nil {
		return err
	}
	u.hold = nil
	u.advance(TransitionMarkUnderContract, now)
	return nil
}

func (u *Unit) MarkSold(now time.Time) error {
	if err := TransitionMarkSold.Check(u.status); err != nil {
		return err
	}
	u.hold = nil
	u.advance(TransitionMarkSold, now)
	return nil
}

// Expire releases a hold whose deadline has passed.
func (u *Unit) Expire(now time.Time) error {
	if err := TransitionExpire.Check(u.status); err != nil {
		return err
	}
	if u.hold != nil && !u.hold.IsExpired(now) {
		return ErrHoldNotExpired
	}
	u.hold = nil
	u.advance(TransitionExpire, now)
	return nil
}

func (u *Unit) CheckDeletable() error {
	return TransitionDelete.Check(u.status)
}

func (u *Unit) advance(t Transition, now time.Time) {
	u.status = t.Target()
	u.version++
	u.updatedAt = now
}
