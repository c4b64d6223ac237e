//go:build unit

package response

import (
	"net/http"
	"testing"

	"estate-marketplace/internal/handler/httperr"
	"estate-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnitView(t *testing.T) {
	t.Run("nil view renders nothing", func(t *testing.T) {
		resp, err := FromUnitView(nil)
		require.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("fields are carried over", func(t *testing.T) {
		v := &queries.UnitView{
			ID:         uuid.New(),
			UnitNumber: "A-101",
			Status:     "available",
			Price:      decimal.NewFromInt(250000),
			Hold:       &queries.HoldView{HolderID: uuid.New()},
		}
		resp, err := FromUnitView(v)
		require.NoError(t, err)
		assert.Equal(t, v.ID, resp.ID)
		assert.Equal(t, "A-101", resp.UnitNumber)
		assert.True(t, v.Price.Equal(resp.Price))
		require.NotNil(t, resp.Hold)
		assert.Equal(t, v.Hold.HolderID, resp.Hold.HolderID)
	})
}

func TestMapInto_FailureIsAnInternalError(t *testing.T) {
	// A non-addressable destination is the one way copier refuses a copy.
	err := mapInto(UnitResponse{}, &queries.UnitView{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to map")
	assert.Equal(t, http.StatusInternalServerError, httperr.StatusOf(err))
}
