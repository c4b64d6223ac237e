package deal

import (
	"slices"
	"time"

	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDealNotFound      = errs.Classify(errs.ErrNotFound, "deal not found")
	ErrInvalidTransition = errs.Classify(errs.ErrInvalidState, "deal cannot move to the requested status")
	ErrUnitNotHeld       = errs.Classify(errs.ErrInvalidState, "unit has no hold to record")
	ErrContactRequired   = errs.Classify(errs.ErrValidation, "contact name and phone are required")
)

type Deal struct {
	id          uuid.UUID
	kind        Kind
	status      Status
	unitID      uuid.UUID
	projectID   uuid.UUID
	buyerID     uuid.UUID
	sellerID    uuid.UUID
	reservation Reservation
	contact     *Contact
	payment     *Payment
	notes       []Note
	createdAt   time.Time
	updatedAt   time.Time
}

type Snapshot struct {
	ID          uuid.UUID
	Kind        Kind
	Status      Status
	UnitID      uuid.UUID
	ProjectID   uuid.UUID
	BuyerID     uuid.UUID
	SellerID    uuid.UUID
	Reservation Reservation
	Contact     *Contact
	Payment     *Payment
	Notes       []Note
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBooking records the hold that was just placed on u.
func NewBooking(u *unit.Unit, sellerID uuid.UUID, now time.Time) (*Deal, error) {
	hold := u.Hold()
	if hold == nil {
		return nil, ErrUnitNotHeld
	}
	reservation := reservationOf(u)
	reservation.DepositAmount = hold.DepositAmount
	expiresAt := hold.ExpiresAt
	reservation.HoldExpiresAt = &expiresAt

	return &Deal{
		id:          uuid.New(),
		kind:        KindBooking,
		status:      StatusPending,
		unitID:      u.ID(),
		projectID:   u.ProjectID(),
		buyerID:     hold.HolderID,
		sellerID:    sellerID,
		reservation: reservation,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func NewVisitRequest(u *unit.Unit, buyerID, sellerID uuid.UUID, contact Contact, now time.Time) (*Deal, error) {
	contact = contact.normalize()
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	return &Deal{
		id:          uuid.New(),
		kind:        KindVisit,
		status:      StatusPending,
		unitID:      u.ID(),
		projectID:   u.ProjectID(),
		buyerID:     buyerID,
		sellerID:    sellerID,
		reservation: reservationOf(u),
		contact:     &contact,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func reservationOf(u *unit.Unit) Reservation {
	details := u.Details()
	return Reservation{
		UnitID:     u.ID(),
		UnitNumber: details.UnitNumber,
		UnitType:   details.Type,
		Area:       details.Area,
		Floor:      details.Floor,
		Price:      details.Price,
	}
}

func Reconstruct(s Snapshot) *Deal {
	return &Deal{
		id:          s.ID,
		kind:        s.Kind,
		status:      s.Status,
		unitID:      s.UnitID,
		projectID:   s.ProjectID,
		buyerID:     s.BuyerID,
		sellerID:    s.SellerID,
		reservation: s.Reservation,
		contact:     s.Contact,
		payment:     s.Payment,
		notes:       slices.Clone(s.Notes),
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

func (d *Deal) Snapshot() Snapshot {
	return Snapshot{
		ID:          d.id,
		Kind:        d.kind,
		Status:      d.status,
		UnitID:      d.unitID,
		ProjectID:   d.projectID,
		BuyerID:     d.buyerID,
		SellerID:    d.sellerID,
		Reservation: d.reservation,
		Contact:     d.contact,
		Payment:     d.payment,
		Notes:       slices.Clone(d.notes),
		CreatedAt:   d.createdAt,
		UpdatedAt:   d.updatedAt,
	}
}

// Apply validates and applies p. Notes are append-only.
func (d *Deal) Apply(p Patch) error {
	if p.Status != "" && p.Status != d.status {
		if !d.status.CanMoveTo(p.Status) {
			return ErrInvalidTransition
		}
		d.status = p.Status
	}
	if p.Payment != nil {
		payment := *p.Payment
		d.payment = &payment
	}
	if p.Note != nil {
		d.notes = append(d.notes, *p.Note)
	}
	d.updatedAt = p.At
	return nil
}

func (d *Deal) ID() uuid.UUID            { return d.id }
func (d *Deal) Kind() Kind               { return d.kind }
func (d *Deal) Status() Status           { return d.status }
func (d *Deal) UnitID() uuid.UUID        { return d.unitID }
func (d *Deal) ProjectID() uuid.UUID     { return d.projectID }
func (d *Deal) BuyerID() uuid.UUID       { return d.buyerID }
func (d *Deal) SellerID() uuid.UUID      { return d.sellerID }
func (d *Deal) Reservation() Reservation { return d.reservation }
func (d *Deal) Contact() *Contact        { return d.contact }
func (d *Deal) Payment() *Payment        { return d.payment }
func (d *Deal) Notes() []Note            { return slices.Clone(d.notes) }
func (d *Deal) CreatedAt() time.Time     { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time     { return d.updatedAt }
