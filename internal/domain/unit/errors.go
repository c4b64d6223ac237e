package unit

import "estate-marketplace/internal/pkg/errs"

var (
	ErrUnitNotFound = errs.Classify(errs.ErrNotFound, "unit not found")

	ErrUnitNotAvailable = errs.Classify(errs.ErrConflict, "unit is not available for booking")
	ErrUnitInUse        = errs.Classify(errs.ErrConflict, "unit can only be deleted while available")
	ErrConcurrentUpdate = errs.Classify(errs.ErrConflict, "unit was modified by another request")

	ErrNotBooked       = errs.Classify(errs.ErrInvalidState, "unit has no pending booking")
	ErrNoActiveBooking = errs.Classify(errs.ErrInvalidState, "unit has no active booking")
	ErrNotReserved     = errs.Classify(errs.ErrInvalidState, "unit is not reserved")
	ErrCannotSell      = errs.Classify(errs.ErrInvalidState, "unit cannot be sold from its current status")
	ErrUnitSold        = errs.Classify(errs.ErrInvalidState, "unit is already sold")
	ErrHoldExpired     = errs.Classify(errs.ErrInvalidState, "booking hold has expired")
	ErrHoldNotExpired  = errs.Classify(errs.ErrInvalidState, "booking hold has not expired yet")

	ErrInvalidPrice            = errs.Classify(errs.ErrValidation, "price must be zero or greater")
	ErrInvalidArea             = errs.Classify(errs.ErrValidation, "area must be greater than zero")
	ErrUnitNumberRequired      = errs.Classify(errs.ErrValidation, "unit number is required")
	ErrTypeRequired            = errs.Classify(errs.ErrValidation, "unit type is required")
	ErrInvalidRoomCount        = errs.Classify(errs.ErrValidation, "bedrooms and bathrooms must be zero or greater")
	ErrInvalidDownPayment      = errs.Classify(errs.ErrValidation, "down payment percent must be between 0 and 100")
	ErrInvalidInstallmentYears = errs.Classify(errs.ErrValidation, "installment years must be zero or greater")
	ErrInvalidDeposit          = errs.Classify(errs.ErrValidation, "deposit must be zero or greater")
	ErrInvalidStatus           = errs.Classify(errs.ErrValidation, "unknown unit status")
	ErrPaymentReference        = errs.Classify(errs.ErrValidation, "payment reference is required")
)
