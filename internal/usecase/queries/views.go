package queries

import (
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/unit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type UnitView struct {
	ID            uuid.UUID        `json:"id"`
	ProjectID     uuid.UUID        `json:"projectId"`
	ProjectName   string           `json:"projectName"`
	UnitNumber    string           `json:"unitNumber"`
	Type          string           `json:"type"`
	Floor         int              `json:"floor"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     int              `json:"bathrooms"`
	Price         decimal.Decimal  `json:"price"`
	Area          decimal.Decimal  `json:"area"`
	PricePerMeter decimal.Decimal  `json:"pricePerMeter"`
	PaymentPlan   *PaymentPlanView `json:"paymentPlan,omitempty"`
	Status        string           `json:"status"`
	Hold          *HoldView        `json:"currentHold,omitempty"`
	Views         int64            `json:"views"`
	Inquiries     int64            `json:"inquiries"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type PaymentPlanView struct {
	MinDownPaymentPercent decimal.Decimal `json:"minDownPaymentPercent"`
	InstallmentYears      int             `json:"installmentYears"`
}

type HoldView struct {
	HolderID         uuid.UUID       `json:"holderId"`
	CreatedAt        time.Time       `json:"createdAt"`
	ExpiresAt        time.Time       `json:"expiresAt"`
	DepositAmount    decimal.Decimal `json:"depositAmount"`
	DepositPaid      bool            `json:"depositPaid"`
	PaymentReference string          `json:"paymentReference,omitempty"`
}

type DealView struct {
	ID          uuid.UUID       `json:"id"`
	Kind        string          `json:"kind"`
	Status      string          `json:"status"`
	UnitID      uuid.UUID       `json:"unitId"`
	ProjectID   uuid.UUID       `json:"projectId"`
	BuyerID     uuid.UUID       `json:"buyerId"`
	SellerID    uuid.UUID       `json:"sellerId"`
	Reservation ReservationView `json:"reservation"`
	Contact     *ContactView    `json:"contact,omitempty"`
	Payment     *PaymentView    `json:"payment,omitempty"`
	Notes       []NoteView      `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ReservationView struct {
	UnitID        uuid.UUID       `json:"unitId"`
	UnitNumber    string          `json:"unitNumber"`
	UnitType      string          `json:"unitType"`
	Area          decimal.Decimal `json:"area"`
	Floor         int             `json:"floor"`
	Price         decimal.Decimal `json:"price"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	HoldExpiresAt *time.Time      `json:"holdExpiresAt,omitempty"`
}

type ContactView struct {
	Name          string     `json:"name"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	PreferredTime *time.Time `json:"preferredTime,omitempty"`
	Message       string     `json:"message,omitempty"`
}

type PaymentView struct {
	Reference   string          `json:"reference"`
	Amount      decimal.Decimal `json:"amount"`
	ConfirmedAt time.Time       `json:"confirmedAt"`
}

type NoteView struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// ViewOfUnit renders a domain unit. projectName is left to the caller because
// the unit aggregate does not carry it.
func ViewOfUnit(u *unit.Unit, projectName string) UnitView {
	s := u.Snapshot()
	v := UnitView{
		ID:            s.ID,
		ProjectID:     s.ProjectID,
		ProjectName:   projectName,
		UnitNumber:    s.Details.UnitNumber,
		Type:          s.Details.Type,
		Floor:         s.Details.Floor,
		Bedrooms:      s.Details.Bedrooms,
		Bathrooms:     s.Details.Bathrooms,
		Price:         s.Details.Price,
		Area:          s.Details.Area,
		PricePerMeter: s.PricePerMeter,
		Status:        string(s.Status),
		Views:         s.Views,
		Inquiries:     s.Inquiries,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if plan := s.Details.PaymentPlan; plan != nil {
		v.PaymentPlan = &PaymentPlanView{
			MinDownPaymentPercent: plan.MinDownPaymentPercent,
			InstallmentYears:      plan.InstallmentYears,
		}
	}
	if h := s.Hold; h != nil {
		v.Hold = &HoldView{
			HolderID:         h.HolderID,
			CreatedAt:        h.CreatedAt,
			ExpiresAt:        h.ExpiresAt,
			DepositAmount:    h.DepositAmount,
			DepositPaid:      h.DepositPaid,
			PaymentReference: h.PaymentReference,
		}
	}
	return v
}

func ViewOfDeal(d *deal.Deal) DealView {
	s := d.Snapshot()
	r := s.Reservation
	v := DealView{
		ID:        s.ID,
		Kind:      string(s.Kind),
		Status:    string(s.Status),
		UnitID:    s.UnitID,
		ProjectID: s.ProjectID,
		BuyerID:   s.BuyerID,
		SellerID:  s.SellerID,
		Reservation: ReservationView{
			UnitID:        r.UnitID,
			UnitNumber:    r.UnitNumber,
			UnitType:      r.UnitType,
			Area:          r.Area,
			Floor:         r.Floor,
			Price:         r.Price,
			DepositAmount: r.DepositAmount,
			HoldExpiresAt: r.HoldExpiresAt,
		},
		Notes:     make([]NoteView, 0, len(s.Notes)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if c := s.Contact; c != nil {
		v.Contact = &ContactView{
			Name:          c.Name,
			Phone:         c.Phone,
			Email:         c.Email,
			PreferredTime: c.PreferredTime,
			Message:       c.Message,
		}
	}
	if p := s.Payment; p != nil {
		v.Payment = &PaymentView{Reference: p.Reference, Amount: p.Amount, ConfirmedAt: p.ConfirmedAt}
	}
	for _, n := range s.Notes {
		v.Notes = append(v.Notes, NoteView{At: n.At, Text: n.Text})
	}
	return v
}
