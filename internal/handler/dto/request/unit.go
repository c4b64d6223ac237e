package request

import (
	"strings"
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/pkg/errs"
	"estate-marketplace/internal/pkg/patch"
	"estate-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidFilter = errs.Classify(errs.ErrValidation, "invalid search filter")

type PaymentPlanRequest struct {
	MinDownPaymentPercent decimal.Decimal `json:"minDownPaymentPercent" binding:"decimal_min=0,decimal_max=100"`
	InstallmentYears      int             `json:"installmentYears" binding:"gte=0,lte=50"`
}

func (r *PaymentPlanRequest) toDomain() *unit.PaymentPlan {
	if r == nil {
		return nil
	}
	return &unit.PaymentPlan{
		MinDownPaymentPercent: r.MinDownPaymentPercent,
		InstallmentYears:      r.InstallmentYears,
	}
}

type CreateUnitRequest struct {
	UnitNumber  string              `json:"unitNumber" binding:"required,max=50"`
	Type        string              `json:"type" binding:"required,max=50"`
	Floor       int                 `json:"floor"`
	Bedrooms    int                 `json:"bedrooms" binding:"gte=0"`
	Bathrooms   int                 `json:"bathrooms" binding:"gte=0"`
	Price       decimal.Decimal     `json:"price" binding:"decimal_min=0"`
	Area        decimal.Decimal     `json:"area" binding:"decimal_gt=0"`
	PaymentPlan *PaymentPlanRequest `json:"paymentPlan"`
}

func (r CreateUnitRequest) ToDetails() unit.Details {
	return unit.Details{
		UnitNumber:  r.UnitNumber,
		Type:        r.Type,
		Floor:       r.Floor,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Price:       r.Price,
		Area:        r.Area,
		PaymentPlan: r.PaymentPlan.toDomain(),
	}
}

type BulkCreateUnitsRequest struct {
	Units []CreateUnitRequest `json:"units" binding:"required,min=1,max=200,dive"`
}

func (r BulkCreateUnitsRequest) ToDetails() []unit.Details {
	out := make([]unit.Details, len(r.Units))
	for i, u := range r.Units {
		out[i] = u.ToDetails()
	}
	return out
}

// UpdateUnitRequest has no status field; status only moves through the
// reservation endpoints.
type UpdateUnitRequest struct {
	UnitNumber  *string             `json:"unitNumber" binding:"omitempty,min=1,max=50"`
	Type        *string             `json:"type" binding:"omitempty,min=1,max=50"`
	Floor       *int                `json:"floor"`
	Bedrooms    *int                `json:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms   *int                `json:"bathrooms" binding:"omitempty,gte=0"`
	Price       *decimal.Decimal    `json:"price" binding:"omitempty,decimal_min=0"`
	Area        *decimal.Decimal    `json:"area" binding:"omitempty,decimal_gt=0"`
	PaymentPlan *PaymentPlanRequest `json:"paymentPlan"`
}

func (r UpdateUnitRequest) ToPatch() unit.Patch {
	return unit.Patch{
		UnitNumber:  r.UnitNumber,
		Type:        r.Type,
		Floor:       r.Floor,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Price:       r.Price,
		Area:        r.Area,
		PaymentPlan: r.PaymentPlan.toDomain(),
	}
}

type BookUnitRequest struct {
	DepositAmount *decimal.Decimal `json:"depositAmount" binding:"omitempty,decimal_min=0"`
}

func (r BookUnitRequest) Deposit() decimal.Decimal {
	return patch.Coalesce(r.DepositAmount, decimal.Zero)
}

type ConfirmDepositRequest struct {
	PaymentReference string `json:"paymentReference" binding:"required,max=100"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type VisitRequest struct {
	Name          string     `json:"name" binding:"required,max=100"`
	Phone         string     `json:"phone" binding:"required,max=30"`
	Email         string     `json:"email" binding:"omitempty,email"`
	PreferredTime *time.Time `json:"preferredTime"`
	Message       string     `json:"message" binding:"max=1000"`
}

func (r VisitRequest) ToContact() deal.Contact {
	return deal.Contact{
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		PreferredTime: r.PreferredTime,
		Message:       r.Message,
	}
}

type ProjectUnitsQuery struct {
	Status string `form:"status" binding:"omitempty,unit_status"`
}

func (q ProjectUnitsQuery) StatusFilter() *unit.Status {
	if q.Status == "" {
		return nil
	}
	s := unit.Status(q.Status)
	return &s
}

// SearchUnitsQuery keeps numeric bounds as strings so malformed values surface
// as a validation error instead of a binding failure.
type SearchUnitsQuery struct {
	ProjectID string `form:"projectId" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,unit_status"`
	Type      string `form:"type" binding:"max=50"`
	MinPrice  string `form:"minPrice"`
	MaxPrice  string `form:"maxPrice"`
	MinArea   string `form:"minArea"`
	MaxArea   string `form:"maxArea"`
	Bedrooms  *int   `form:"bedrooms" binding:"omitempty,gte=0"`
	Floor     *int   `form:"floor"`
	Cursor    string `form:"cursor"`
	Limit     int    `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

func (q SearchUnitsQuery) ToFilters() (queries.UnitFilters, error) {
	f := queries.UnitFilters{
		Type:     strings.ToLower(strings.TrimSpace(q.Type)),
		Bedrooms: q.Bedrooms,
		Floor:    q.Floor,
	}
	if q.ProjectID != "" {
		id, err := uuid.Parse(q.ProjectID)
		if err != nil {
			return queries.UnitFilters{}, ErrInvalidFilter
		}
		f.ProjectID = &id
	}
	if q.Status != "" {
		s := unit.Status(q.Status)
		f.Status = &s
	}

	var err error
	if f.MinPrice, err = optionalDecimal(q.MinPrice); err != nil {
		return queries.UnitFilters{}, err
	}
	if f.MaxPrice, err = optionalDecimal(q.MaxPrice); err != nil {
		return queries.UnitFilters{}, err
	}
	if f.MinArea, err = optionalDecimal(q.MinArea); err != nil {
		return queries.UnitFilters{}, err
	}
	if f.MaxArea, err = optionalDecimal(q.MaxArea); err != nil {
		return queries.UnitFilters{}, err
	}
	return f, nil
}

func (q SearchUnitsQuery) CursorValue() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}

func optionalDecimal(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil, ErrInvalidFilter
	}
	return &d, nil
}
