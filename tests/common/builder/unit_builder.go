//go:build unit || e2e

package builder

import (
	"time"

	"estate-marketplace/internal/domain/unit"
	reqdto "estate-marketplace/internal/handler/dto/request"
	"estate-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitBuilder struct {
	ProjectID   uuid.UUID
	ProjectName string
	UnitNumber  string
	Type        string
	Floor       int
	Bedrooms    int
	Bathrooms   int
	Price       decimal.Decimal
	Area        decimal.Decimal
	PaymentPlan *unit.PaymentPlan
	CreatedAt   time.Time
}

func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		ProjectID:   uuid.New(),
		ProjectName: "Palm Residence",
		UnitNumber:  "A-101",
		Type:        "apartment",
		Floor:       1,
		Bedrooms:    2,
		Bathrooms:   1,
		Price:       decimal.NewFromInt(2_000_000),
		Area:        decimal.NewFromInt(100),
		CreatedAt:   time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UnitBuilder) BuildDetails() unit.Details {
	return unit.Details{
		UnitNumber:  u.UnitNumber,
		Type:        u.Type,
		Floor:       u.Floor,
		Bedrooms:    u.Bedrooms,
		Bathrooms:   u.Bathrooms,
		Price:       u.Price,
		Area:        u.Area,
		PaymentPlan: u.PaymentPlan,
	}
}

func (u *UnitBuilder) BuildDomain() (*unit.Unit, error) {
	return unit.New(u.ProjectID, u.BuildDetails(), u.CreatedAt)
}

// MustBuildDomain is for fixtures whose details are known to be valid.
func (u *UnitBuilder) MustBuildDomain() *unit.Unit {
	built, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return built
}

func (u *UnitBuilder) BuildView() *queries.UnitView {
	v := queries.ViewOfUnit(u.MustBuildDomain(), u.ProjectName)
	return &v
}

func (u *UnitBuilder) BuildCreateRequestDTO() reqdto.CreateUnitRequest {
	req := reqdto.CreateUnitRequest{
		UnitNumber: u.UnitNumber,
		Type:       u.Type,
		Floor:      u.Floor,
		Bedrooms:   u.Bedrooms,
		Bathrooms:  u.Bathrooms,
		Price:      u.Price,
		Area:       u.Area,
	}
	if u.PaymentPlan != nil {
		req.PaymentPlan = &reqdto.PaymentPlanRequest{
			MinDownPaymentPercent: u.PaymentPlan.MinDownPaymentPercent,
			InstallmentYears:      u.PaymentPlan.InstallmentYears,
		}
	}
	return req
}

// Fluent builder methods
func (u *UnitBuilder) WithProjectID(projectID uuid.UUID) *UnitBuilder {
	u.ProjectID = projectID
	return u
}

func (u *UnitBuilder) WithUnitNumber(number string) *UnitBuilder {
	u.UnitNumber = number
	return u
}

func (u *UnitBuilder) WithPrice(price int64) *UnitBuilder {
	u.Price = decimal.NewFromInt(price)
	return u
}

func (u *UnitBuilder) WithArea(area int64) *UnitBuilder {
	u.Area = decimal.NewFromInt(area)
	return u
}

func (u *UnitBuilder) WithDownPayment(percent int64) *UnitBuilder {
	u.PaymentPlan = &unit.PaymentPlan{MinDownPaymentPercent: decimal.NewFromInt(percent), InstallmentYears: 5}
	return u
}

func (u *UnitBuilder) WithCreatedAt(createdAt time.Time) *UnitBuilder {
	u.CreatedAt = createdAt
	return u
}

func (u *UnitBuilder) AsVilla() *UnitBuilder {
	u.Type = "villa"
	u.Bedrooms = 4
	u.Bathrooms = 3
	return u
}
