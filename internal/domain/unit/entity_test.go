//go:build unit

package unit_test

import (
	"testing"
	"time"

	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newAvailableUnit(t *testing.T, price, area string) *unit.Unit {
	t.Helper()
	u, err := unit.New(uuid.New(), unit.Details{
		UnitNumber: "A-101",
		Type:       "Apartment",
		Floor:      1,
		Bedrooms:   2,
		Bathrooms:  1,
		Price:      d(price),
		Area:       d(area),
	}, baseTime)
	require.NoError(t, err)
	return u
}

func requireHoldInvariant(t *testing.T, u *unit.Unit) {
	t.Helper()
	assert.Equal(t, u.Status().CarriesHold(), u.Hold() != nil,
		"hold presence must match status %s", u.Status())
}

func TestNew(t *testing.T) {
	t.Run("computes price per meter and starts available", func(t *testing.T) {
		u := newAvailableUnit(t, "3000000", "150")

		assert.Equal(t, unit.StatusAvailable, u.Status())
		assert.True(t, d("20000").Equal(u.PricePerMeter()), "got %s", u.PricePerMeter())
		assert.Equal(t, "apartment", u.Details().Type)
		assert.Nil(t, u.Hold())
		assert.Zero(t, u.Version())
	})

	t.Run("rounds price per meter", func(t *testing.T) {
		u := newAvailableUnit(t, "1000000", "3")
		assert.True(t, d("333333").Equal(u.PricePerMeter()), "got %s", u.PricePerMeter())
	})

	testCases := []struct {
		name   string
		mutate func(*unit.Details)
		errIs  error
	}{
		{name: "zero price is allowed", mutate: func(x *unit.Details) { x.Price = decimal.Zero }},
		{name: "negative price", mutate: func(x *unit.Details) { x.Price = d("-1") }, errIs: unit.ErrInvalidPrice},
		{name: "zero area", mutate: func(x *unit.Details) { x.Area = decimal.Zero }, errIs: unit.ErrInvalidArea},
		{name: "blank unit number", mutate: func(x *unit.Details) { x.UnitNumber = "  " }, errIs: unit.ErrUnitNumberRequired},
		{name: "missing type", mutate: func(x *unit.Details) { x.Type = "" }, errIs: unit.ErrTypeRequired},
		{name: "negative bedrooms", mutate: func(x *unit.Details) { x.Bedrooms = -1 }, errIs: unit.ErrInvalidRoomCount},
		{
			name:   "down payment above 100",
			mutate: func(x *unit.Details) { x.PaymentPlan = &unit.PaymentPlan{MinDownPaymentPercent: d("101")} },
			errIs:  unit.ErrInvalidDownPayment,
		},
		{
			name:   "negative installment years",
			mutate: func(x *unit.Details) { x.PaymentPlan = &unit.PaymentPlan{InstallmentYears: -2} },
			errIs:  unit.ErrInvalidInstallmentYears,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			details := unit.Details{UnitNumber: "B-2", Type: "villa", Price: d("100"), Area: d("10")}
			tc.mutate(&details)

			_, err := unit.New(uuid.New(), details, baseTime)
			if tc.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestEdit_RecomputesPricePerMeter(t *testing.T) {
	u := newAvailableUnit(t, "3000000", "150")

	newPrice := d("4500000")
	require.NoError(t, u.Edit(unit.Patch{Price: &newPrice}, baseTime.Add(time.Minute)))
	assert.True(t, d("30000").Equal(u.PricePerMeter()), "got %s", u.PricePerMeter())

	newArea := d("300")
	require.NoError(t, u.Edit(unit.Patch{Area: &newArea}, baseTime.Add(2*time.Minute)))
	assert.True(t, d("15000").Equal(u.PricePerMeter()), "got %s", u.PricePerMeter())

	badArea := decimal.Zero
	err := u.Edit(unit.Patch{Area: &badArea}, baseTime)
	require.ErrorIs(t, err, unit.ErrInvalidArea)
	assert.True(t, d("300").Equal(u.Area()), "failed edit must leave the unit untouched")
	assert.Zero(t, u.Version(), "edits never bump the state version")
}

func TestPlaceHold(t *testing.T) {
	holder := uuid.New()

	t.Run("default deposit is five percent of price", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")

		require.NoError(t, u.PlaceHold(holder, decimal.Zero, unit.DefaultHoldPolicy(), baseTime))

		hold := u.Hold()
		require.NotNil(t, hold)
		assert.Equal(t, unit.StatusBooked, u.Status())
		assert.True(t, d("100000").Equal(hold.DepositAmount), "got %s", hold.DepositAmount)
		assert.Equal(t, baseTime.Add(48*time.Hour), hold.ExpiresAt)
		assert.Equal(t, holder, hold.HolderID)
		assert.False(t, hold.DepositPaid)
		assert.Equal(t, int64(1), u.Version())
		requireHoldInvariant(t, u)
	})

	t.Run("payment plan percent wins over default", func(t *testing.T) {
		u, err := unit.New(uuid.New(), unit.Details{
			UnitNumber:  "C-3",
			Type:        "duplex",
			Price:       d("2000000"),
			Area:        d("100"),
			PaymentPlan: &unit.PaymentPlan{MinDownPaymentPercent: d("10"), InstallmentYears: 5},
		}, baseTime)
		require.NoError(t, err)

		require.NoError(t, u.PlaceHold(holder, decimal.Zero, unit.DefaultHoldPolicy(), baseTime))
		assert.True(t, d("200000").Equal(u.Hold().DepositAmount))
	})

	t.Run("requested deposit overrides default", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		require.NoError(t, u.PlaceHold(holder, d("50000"), unit.DefaultHoldPolicy(), baseTime))
		assert.True(t, d("50000").Equal(u.Hold().DepositAmount))
	})

	t.Run("negative deposit rejected", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		err := u.PlaceHold(holder, d("-1"), unit.DefaultHoldPolicy(), baseTime)
		require.ErrorIs(t, err, unit.ErrInvalidDeposit)
		assert.Equal(t, unit.StatusAvailable, u.Status())
	})

	t.Run("second hold conflicts", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		require.NoError(t, u.PlaceHold(holder, decimal.Zero, unit.DefaultHoldPolicy(), baseTime))

		err := u.PlaceHold(uuid.New(), decimal.Zero, unit.DefaultHoldPolicy(), baseTime)
		require.ErrorIs(t, err, unit.ErrUnitNotAvailable)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, holder, u.Hold().HolderID)
	})
}

func TestConfirmDeposit(t *testing.T) {
	policy := unit.DefaultHoldPolicy()

	t.Run("booked to reserved", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, policy, baseTime))

		require.NoError(t, u.ConfirmDeposit("PAY-1", baseTime.Add(time.Hour)))
		assert.Equal(t, unit.StatusReserved, u.Status())
		assert.True(t, u.Hold().DepositPaid)
		assert.Equal(t, "PAY-1", u.Hold().PaymentReference)
		requireHoldInvariant(t, u)
	})

	t.Run("valid at exactly the deadline", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, policy, baseTime))
		require.NoError(t, u.ConfirmDeposit("PAY-2", baseTime.Add(48*time.Hour)))
	})

	t.Run("expired hold", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, policy, baseTime))

		err := u.ConfirmDeposit("PAY-3", baseTime.Add(48*time.Hour+time.Second))
		require.ErrorIs(t, err, unit.ErrHoldExpired)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, unit.StatusBooked, u.Status())
	})

	t.Run("not booked", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		err := u.ConfirmDeposit("PAY-4", baseTime)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("missing reference", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, policy, baseTime))
		require.ErrorIs(t, u.ConfirmDeposit(" ", baseTime), unit.ErrPaymentReference)
	})
}

func TestExpire(t *testing.T) {
	policy := unit.DefaultHoldPolicy()

	t.Run("one second before the deadline stays booked", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, policy, baseTime))

		err := u.Expire(baseTime.Add(48*time.Hour - time.Second))
		require.ErrorIs(t, err, unit.ErrHoldNotExpired)
		assert.Equal(t, unit.StatusBooked, u.Status())
		requireHoldInvariant(t, u)
	})

	t.Run("one second after the deadline becomes available", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, policy, baseTime))

		require.NoError(t, u.Expire(baseTime.Add(48*time.Hour+time.Second)))
		assert.Equal(t, unit.StatusAvailable, u.Status())
		requireHoldInvariant(t, u)
	})

	t.Run("nothing to expire", func(t *testing.T) {
		u := newAvailableUnit(t, "2000000", "100")
		require.ErrorIs(t, u.Expire(baseTime), unit.ErrNoActiveBooking)
	})
}

func TestLifecycle_HoldInvariantAndTerminalSold(t *testing.T) {
	u := newAvailableUnit(t, "2000000", "100")
	requireHoldInvariant(t, u)

	steps := []func() error{
		func() error { return u.PlaceHold(uuid.New(), decimal.Zero, unit.DefaultHoldPolicy(), baseTime) },
		func() error { return u.ConfirmDeposit("PAY-9", baseTime.Add(time.Hour)) },
		func() error { return u.MarkUnderContract(baseTime.Add(2 * time.Hour)) },
		func() error { return u.MarkSold(baseTime.Add(3 * time.Hour)) },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		requireHoldInvariant(t, u)
	}
	assert.Equal(t, unit.StatusSold, u.Status())
	assert.Equal(t, int64(4), u.Version())

	now := baseTime.Add(100 * time.Hour)
	assert.ErrorIs(t, u.PlaceHold(uuid.New(), decimal.Zero, unit.DefaultHoldPolicy(), now), errs.ErrConflict)
	assert.ErrorIs(t, u.ConfirmDeposit("X", now), unit.ErrUnitSold)
	assert.ErrorIs(t, u.Cancel(now), unit.ErrUnitSold)
	assert.ErrorIs(t, u.MarkUnderContract(now), unit.ErrUnitSold)
	assert.ErrorIs(t, u.MarkSold(now), unit.ErrUnitSold)
	assert.ErrorIs(t, u.Expire(now), unit.ErrUnitSold)
	assert.ErrorIs(t, u.CheckDeletable(), errs.ErrConflict)
	assert.Equal(t, unit.StatusSold, u.Status())
	assert.Equal(t, int64(4), u.Version())
}

func TestCancel(t *testing.T) {
	for _, confirm := range []bool{false, true} {
		u := newAvailableUnit(t, "2000000", "100")
		require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, unit.DefaultHoldPolicy(), baseTime))
		if confirm {
			require.NoError(t, u.ConfirmDeposit("PAY", baseTime))
		}

		require.NoError(t, u.Cancel(baseTime.Add(time.Hour)))
		assert.Equal(t, unit.StatusAvailable, u.Status())
		requireHoldInvariant(t, u)
	}
}

func TestCheckDeletable(t *testing.T) {
	u := newAvailableUnit(t, "2000000", "100")
	require.NoError(t, u.CheckDeletable())

	require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, unit.DefaultHoldPolicy(), baseTime))
	err := u.CheckDeletable()
	require.ErrorIs(t, err, unit.ErrUnitInUse)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestReconstruct_RoundTrip(t *testing.T) {
	u := newAvailableUnit(t, "2000000", "100")
	require.NoError(t, u.PlaceHold(uuid.New(), decimal.Zero, unit.DefaultHoldPolicy(), baseTime))

	snapshot := u.Snapshot()
	restored := unit.Reconstruct(snapshot)

	assert.Equal(t, snapshot, restored.Snapshot())
	assert.Equal(t, u.StateToken(), restored.StateToken())

	// Mutating the returned hold must not leak into the entity.
	hold := restored.Hold()
	hold.DepositPaid = true
	assert.False(t, restored.Hold().DepositPaid)
}
