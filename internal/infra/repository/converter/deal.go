package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"estate-marketplace/internal/domain/deal"
	sqlc "estate-marketplace/internal/infra/sqlc/generated"
	"estate-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// jsonb documents stored on the deals table
type reservationDoc struct {
	UnitID        uuid.UUID       `json:"unitId"`
	UnitNumber    string          `json:"unitNumber"`
	UnitType      string          `json:"unitType"`
	Area          decimal.Decimal `json:"area"`
	Floor         int             `json:"floor"`
	Price         decimal.Decimal `json:"price"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	HoldExpiresAt *time.Time      `json:"holdExpiresAt,omitempty"`
}

type contactDoc struct {
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email,omitempty"`
	PreferredTime *time.Time `json:"preferredTime,omitempty"`
	Message       string     `json:"message,omitempty"`
}

type noteDoc struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

func DealToCreateParams(d *deal.Deal) (sqlc.CreateDealParams, error) {
	s := d.Snapshot()
	r := s.Reservation
	reservation, err := json.Marshal(reservationDoc(r))
	if err != nil {
		return sqlc.CreateDealParams{}, fmt.Errorf("encode reservation: %w", err)
	}
	var contact []byte
	if c := s.Contact; c != nil {
		if contact, err = json.Marshal(contactDoc(*c)); err != nil {
			return sqlc.CreateDealParams{}, fmt.Errorf("encode contact: %w", err)
		}
	}
	notes, err := encodeNotes(s.Notes)
	if err != nil {
		return sqlc.CreateDealParams{}, err
	}

	return sqlc.CreateDealParams{
		ID:          s.ID,
		Kind:        s.Kind.String(),
		Status:      s.Status.String(),
		UnitID:      s.UnitID,
		ProjectID:   s.ProjectID,
		BuyerID:     s.BuyerID,
		SellerID:    s.SellerID,
		Reservation: reservation,
		Contact:     contact,
		Notes:       notes,
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt),
	}, nil
}

func encodeNotes(notes []deal.Note) ([]byte, error) {
	docs := make([]noteDoc, 0, len(notes))
	for _, n := range notes {
		docs = append(docs, noteDoc(n))
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("encode notes: %w", err)
	}
	return b, nil
}

// DealPatch is a deal.Patch flattened to the nullable columns of the update
// statements. NULL columns keep their stored value; Notes is appended.
type DealPatch struct {
	Status             pgtype.Text
	PaymentReference   pgtype.Text
	PaymentAmount      pgtype.Numeric
	PaymentConfirmedAt pgtype.Timestamptz
	Notes              []byte
	UpdatedAt          pgtype.Timestamptz
}

func DealPatchToColumns(p deal.Patch) (DealPatch, error) {
	cols := DealPatch{
		Status:    pgconv.StringToPgtype(p.Status.String()),
		UpdatedAt: pgconv.TimeToPgtype(p.At),
	}
	if pay := p.Payment; pay != nil {
		cols.PaymentReference = pgconv.StringToPgtype(pay.Reference)
		cols.PaymentAmount = pgconv.DecimalToNumeric(pay.Amount)
		cols.PaymentConfirmedAt = pgconv.TimeOrNullToPgtype(pay.ConfirmedAt)
	}
	var notes []deal.Note
	if p.Note != nil {
		notes = append(notes, *p.Note)
	}
	b, err := encodeNotes(notes)
	if err != nil {
		return DealPatch{}, err
	}
	cols.Notes = b
	return cols, nil
}

func (c DealPatch) ByUnitParams(unitID uuid.UUID, statusFilter []deal.Status) sqlc.UpdateOpenBookingDealParams {
	return sqlc.UpdateOpenBookingDealParams{
		Status:             c.Status,
		PaymentReference:   c.PaymentReference,
		PaymentAmount:      c.PaymentAmount,
		PaymentConfirmedAt: c.PaymentConfirmedAt,
		Notes:              c.Notes,
		UpdatedAt:          c.UpdatedAt,
		UnitID:             unitID,
		StatusFilter:       StatusStrings(statusFilter),
	}
}

func (c DealPatch) ByIDParams(dealID uuid.UUID, statusFilter []deal.Status) sqlc.UpdateDealByIDParams {
	return sqlc.UpdateDealByIDParams{
		Status:             c.Status,
		PaymentReference:   c.PaymentReference,
		PaymentAmount:      c.PaymentAmount,
		PaymentConfirmedAt: c.PaymentConfirmedAt,
		Notes:              c.Notes,
		UpdatedAt:          c.UpdatedAt,
		ID:                 dealID,
		StatusFilter:       StatusStrings(statusFilter),
	}
}

func StatusStrings(statuses []deal.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func DealFromRow(row sqlc.Deals) (*deal.Deal, error) {
	var r reservationDoc
	if err := json.Unmarshal(row.Reservation, &r); err != nil {
		return nil, fmt.Errorf("deal %s reservation: %w", row.ID, err)
	}

	s := deal.Snapshot{
		ID:          row.ID,
		Kind:        deal.Kind(row.Kind),
		Status:      deal.Status(row.Status),
		UnitID:      row.UnitID,
		ProjectID:   row.ProjectID,
		BuyerID:     row.BuyerID,
		SellerID:    row.SellerID,
		Reservation: deal.Reservation(r),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	if len(row.Contact) > 0 && string(row.Contact) != "null" {
		var c contactDoc
		if err := json.Unmarshal(row.Contact, &c); err != nil {
			return nil, fmt.Errorf("deal %s contact: %w", row.ID, err)
		}
		contact := deal.Contact(c)
		s.Contact = &contact
	}

	if row.PaymentReference.Valid {
		amount, err := pgconv.DecimalFromNumeric(row.PaymentAmount)
		if err != nil {
			return nil, fmt.Errorf("deal %s payment: %w", row.ID, err)
		}
		s.Payment = &deal.Payment{
			Reference:   row.PaymentReference.String,
			Amount:      amount,
			ConfirmedAt: pgconv.TimeFromPgtype(row.PaymentConfirmedAt),
		}
	}

	var notes []noteDoc
	if len(row.Notes) > 0 {
		if err := json.Unmarshal(row.Notes, &notes); err != nil {
			return nil, fmt.Errorf("deal %s notes: %w", row.ID, err)
		}
	}
	for _, n := range notes {
		s.Notes = append(s.Notes, deal.Note(n))
	}

	return deal.Reconstruct(s), nil
}
