package response

import (
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/pkg/errs"
	"estate-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices are rendered as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type UnitResponse struct {
	ID            uuid.UUID            `json:"id"`
	ProjectID     uuid.UUID            `json:"projectId"`
	ProjectName   string               `json:"projectName,omitempty"`
	UnitNumber    string               `json:"unitNumber"`
	Type          string               `json:"type"`
	Floor         int                  `json:"floor"`
	Bedrooms      int                  `json:"bedrooms"`
	Bathrooms     int                  `json:"bathrooms"`
	Price         decimal.Decimal      `json:"price"`
	Area          decimal.Decimal      `json:"area"`
	PricePerMeter decimal.Decimal      `json:"pricePerMeter"`
	PaymentPlan   *PaymentPlanResponse `json:"paymentPlan,omitempty"`
	Status        string               `json:"status"`
	Hold          *HoldResponse        `json:"currentHold,omitempty"`
	Views         int64                `json:"views"`
	Inquiries     int64                `json:"inquiries"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type PaymentPlanResponse struct {
	MinDownPaymentPercent decimal.Decimal `json:"minDownPaymentPercent"`
	InstallmentYears      int             `json:"installmentYears"`
}

type HoldResponse struct {
	HolderID         uuid.UUID       `json:"holderId"`
	CreatedAt        time.Time       `json:"createdAt"`
	ExpiresAt        time.Time       `json:"expiresAt"`
	DepositAmount    decimal.Decimal `json:"depositAmount"`
	DepositPaid      bool            `json:"depositPaid"`
	PaymentReference string          `json:"paymentReference,omitempty"`
}

type DealResponse struct {
	ID          uuid.UUID           `json:"id"`
	Kind        string              `json:"kind"`
	Status      string              `json:"status"`
	UnitID      uuid.UUID           `json:"unitId"`
	ProjectID   uuid.UUID           `json:"projectId"`
	BuyerID     uuid.UUID           `json:"buyerId"`
	SellerID    uuid.UUID           `json:"sellerId"`
	Reservation ReservationResponse `json:"reservation"`
	Contact     *ContactResponse    `json:"contact,omitempty"`
	Payment     *PaymentResponse    `json:"payment,omitempty"`
	Notes       []NoteResponse      `json:"notes"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type ReservationResponse struct {
	UnitID        uuid.UUID       `json:"unitId"`
	UnitNumber    string          `json:"unitNumber"`
	UnitType      string          `json:"unitType"`
	Area          decimal.Decimal `json:"area"`
	Floor         int             `json:"floor"`
	Price         decimal.Decimal `json:"price"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	HoldExpiresAt *time.Time      `json:"holdExpiresAt,omitempty"`
}

type ContactResponse struct {
	Name          string     `json:"name"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	PreferredTime *time.Time `json:"preferredTime,omitempty"`
	Message       string     `json:"message,omitempty"`
}

type PaymentResponse struct {
	Reference   string          `json:"reference"`
	Amount      decimal.Decimal `json:"amount"`
	ConfirmedAt time.Time       `json:"confirmedAt"`
}

type NoteResponse struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

type ProjectSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UnitCount int       `json:"unitCount"`
}

// mapInto copies a read view onto its response type. Field names match on
// both sides, so an error means the types drifted.
func mapInto(dst, src any) error {
	if err := copier.Copy(dst, src); err != nil {
		return errs.Wrapf(err, "failed to map %T", src)
	}
	return nil
}

func FromUnitView(v *queries.UnitView) (*UnitResponse, error) {
	if v == nil {
		return nil, nil
	}
	var resp UnitResponse
	if err := mapInto(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromUnitViews(views []*queries.UnitView) ([]*UnitResponse, error) {
	out := make([]*UnitResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromUnitView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// FromUnit renders a unit straight from a command result.
func FromUnit(u *unit.Unit, p *project.Project) (*UnitResponse, error) {
	if u == nil {
		return nil, nil
	}
	name := ""
	if p != nil {
		name = p.Name
	}
	v := queries.ViewOfUnit(u, name)
	return FromUnitView(&v)
}

func FromUnits(units []*unit.Unit, p *project.Project) ([]*UnitResponse, error) {
	out := make([]*UnitResponse, 0, len(units))
	for _, u := range units {
		resp, err := FromUnit(u, p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func FromDeal(d *deal.Deal) (*DealResponse, error) {
	if d == nil {
		return nil, nil
	}
	v := queries.ViewOfDeal(d)
	var resp DealResponse
	if err := mapInto(&resp, &v); err != nil {
		return nil, err
	}
	if resp.Notes == nil {
		resp.Notes = []NoteResponse{}
	}
	return &resp, nil
}

func FromProject(p *project.Project) *ProjectSummary {
	if p == nil {
		return nil
	}
	return &ProjectSummary{ID: p.ID, Name: p.Name, UnitCount: p.UnitCount}
}
