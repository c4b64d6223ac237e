//go:build unit

package unit_test

import (
	"testing"

	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	testCases := []struct {
		transition unit.Transition
		allowed    []unit.Status
		target     unit.Status
		rejectAs   error
	}{
		{unit.TransitionHold, []unit.Status{unit.StatusAvailable}, unit.StatusBooked, errs.ErrConflict},
		{unit.TransitionConfirmDeposit, []unit.Status{unit.StatusBooked}, unit.StatusReserved, errs.ErrInvalidState},
		{unit.TransitionCancel, []unit.Status{unit.StatusBooked, unit.StatusReserved}, unit.StatusAvailable, errs.ErrInvalidState},
		{unit.TransitionMarkUnderContract, []unit.Status{unit.StatusReserved}, unit.StatusUnderContract, errs.ErrInvalidState},
		{
			unit.TransitionMarkSold,
			[]unit.Status{unit.StatusBooked, unit.StatusReserved, unit.StatusUnderContract},
			unit.StatusSold,
			errs.ErrInvalidState,
		},
		{unit.TransitionExpire, []unit.Status{unit.StatusBooked, unit.StatusReserved}, unit.StatusAvailable, errs.ErrInvalidState},
		{unit.TransitionDelete, []unit.Status{unit.StatusAvailable}, "", errs.ErrConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.transition.String(), func(t *testing.T) {
			assert.ElementsMatch(t, tc.allowed, tc.transition.Sources())
			assert.Equal(t, tc.target, tc.transition.Target())

			for _, from := range unit.Statuses {
				err := tc.transition.Check(from)
				if contains(tc.allowed, from) {
					assert.NoError(t, err, "from %s", from)
					continue
				}
				assert.ErrorIs(t, err, tc.rejectAs, "from %s", from)
			}
		})
	}
}

func TestTransition_Unknown(t *testing.T) {
	err := unit.Transition("teleport").Check(unit.StatusAvailable)
	assert.Error(t, err)
	assert.Nil(t, errs.Class(err))
}

func TestParseStatus(t *testing.T) {
	status, err := unit.ParseStatus("under_contract")
	assert.NoError(t, err)
	assert.Equal(t, unit.StatusUnderContract, status)

	_, err = unit.ParseStatus("pending")
	assert.ErrorIs(t, err, unit.ErrInvalidStatus)
}

func contains(list []unit.Status, s unit.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
