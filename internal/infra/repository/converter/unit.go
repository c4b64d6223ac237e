package converter

import (
	"fmt"
	"math"

	"estate-marketplace/internal/domain/unit"
	sqlc "estate-marketplace/internal/infra/sqlc/generated"
	"estate-marketplace/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func UnitToCreateParams(u *unit.Unit) sqlc.CreateUnitParams {
	s := u.Snapshot()
	d := s.Details
	percent, years := planColumns(d.PaymentPlan)
	return sqlc.CreateUnitParams{
		ID:                    s.ID,
		ProjectID:             s.ProjectID,
		UnitNumber:            d.UnitNumber,
		UnitType:              d.Type,
		Floor:                 IntToInt32(d.Floor),
		Bedrooms:              IntToInt32(d.Bedrooms),
		Bathrooms:             IntToInt32(d.Bathrooms),
		Price:                 pgconv.DecimalToNumeric(d.Price),
		Area:                  pgconv.DecimalToNumeric(d.Area),
		PricePerMeter:         pgconv.DecimalToNumeric(s.PricePerMeter),
		MinDownPaymentPercent: percent,
		InstallmentYears:      years,
		Status:                s.Status.String(),
		StateVersion:          s.Version,
		CreatedAt:             pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:             pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

// UnitToTransitionParams writes the state of u guarded by the expected token.
func UnitToTransitionParams(u *unit.Unit, expected unit.StateToken) sqlc.TransitionUnitParams {
	s := u.Snapshot()
	params := sqlc.TransitionUnitParams{
		Status:          s.Status.String(),
		StateVersion:    s.Version,
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt),
		ID:              s.ID,
		ExpectedStatus:  expected.Status.String(),
		ExpectedVersion: expected.Version,
	}
	if h := s.Hold; h != nil {
		params.HoldHolderID = pgconv.UUIDToPgtype(h.HolderID)
		params.HoldCreatedAt = pgconv.TimeToPgtype(h.CreatedAt)
		params.HoldExpiresAt = pgconv.TimeToPgtype(h.ExpiresAt)
		params.HoldDepositAmount = pgconv.DecimalToNumeric(h.DepositAmount)
		params.HoldDepositPaid = h.DepositPaid
		params.HoldPaymentReference = pgconv.StringToPgtype(h.PaymentReference)
	}
	return params
}

func UnitToDetailsParams(u *unit.Unit) sqlc.UpdateUnitDetailsParams {
	s := u.Snapshot()
	d := s.Details
	percent, years := planColumns(d.PaymentPlan)
	return sqlc.UpdateUnitDetailsParams{
		ID:                    s.ID,
		UnitNumber:            d.UnitNumber,
		UnitType:              d.Type,
		Floor:                 IntToInt32(d.Floor),
		Bedrooms:              IntToInt32(d.Bedrooms),
		Bathrooms:             IntToInt32(d.Bathrooms),
		Price:                 pgconv.DecimalToNumeric(d.Price),
		Area:                  pgconv.DecimalToNumeric(d.Area),
		PricePerMeter:         pgconv.DecimalToNumeric(s.PricePerMeter),
		MinDownPaymentPercent: percent,
		InstallmentYears:      years,
		UpdatedAt:             pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func planColumns(plan *unit.PaymentPlan) (pgtype.Numeric, pgtype.Int4) {
	if plan == nil {
		return pgtype.Numeric{}, pgtype.Int4{}
	}
	years := plan.InstallmentYears
	return pgconv.DecimalToNumeric(plan.MinDownPaymentPercent), pgconv.IntPtrToPgtype(&years)
}

func UnitFromRow(row sqlc.Units) (*unit.Unit, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, fmt.Errorf("unit %s price: %w", row.ID, err)
	}
	area, err := pgconv.DecimalFromNumeric(row.Area)
	if err != nil {
		return nil, fmt.Errorf("unit %s area: %w", row.ID, err)
	}
	perMeter, err := pgconv.DecimalFromNumeric(row.PricePerMeter)
	if err != nil {
		return nil, fmt.Errorf("unit %s price per meter: %w", row.ID, err)
	}

	s := unit.Snapshot{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Details: unit.Details{
			UnitNumber: row.UnitNumber,
			Type:       row.UnitType,
			Floor:      int(row.Floor),
			Bedrooms:   int(row.Bedrooms),
			Bathrooms:  int(row.Bathrooms),
			Price:      price,
			Area:       area,
		},
		PricePerMeter: perMeter,
		Status:        unit.Status(row.Status),
		Version:       row.StateVersion,
		Views:         row.Views,
		Inquiries:     row.Inquiries,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	if row.MinDownPaymentPercent.Valid || row.InstallmentYears.Valid {
		percent, err := pgconv.DecimalFromNumeric(row.MinDownPaymentPercent)
		if err != nil {
			return nil, fmt.Errorf("unit %s down payment: %w", row.ID, err)
		}
		plan := &unit.PaymentPlan{MinDownPaymentPercent: percent}
		if years := pgconv.IntPtrFromPgtype(row.InstallmentYears); years != nil {
			plan.InstallmentYears = *years
		}
		s.Details.PaymentPlan = plan
	}

	if holder := pgconv.UUIDPtrFromPgtype(row.HoldHolderID); holder != nil {
		deposit, err := pgconv.DecimalFromNumeric(row.HoldDepositAmount)
		if err != nil {
			return nil, fmt.Errorf("unit %s deposit: %w", row.ID, err)
		}
		s.Hold = &unit.Hold{
			HolderID:         *holder,
			CreatedAt:        pgconv.TimeFromPgtype(row.HoldCreatedAt),
			ExpiresAt:        pgconv.TimeFromPgtype(row.HoldExpiresAt),
			DepositAmount:    deposit,
			DepositPaid:      row.HoldDepositPaid,
			PaymentReference: pgconv.StringFromPgtype(row.HoldPaymentReference),
		}
	}

	return unit.Reconstruct(s), nil
}

// IntToInt32 clamps to the int32 range of the integer columns.
func IntToInt32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v) // #nosec G115 -- bounds checked above
}
