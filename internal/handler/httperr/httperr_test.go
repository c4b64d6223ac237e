//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/handler/httperr"
	"estate-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", unit.ErrUnitNotFound, http.StatusNotFound},
		{"forbidden", project.ErrNotOwner, http.StatusForbidden},
		{"conflict", unit.ErrUnitNotAvailable, http.StatusConflict},
		{"invalid state", unit.ErrNotReserved, http.StatusBadRequest},
		{"validation", unit.ErrInvalidArea, http.StatusBadRequest},
		{"wrapped conflict", errs.Wrap(unit.ErrConcurrentUpdate, "book"), http.StatusConflict},
		{"unclassified", errs.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, map[string]string) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		httperr.Abort(c, err)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	t.Run("classified error keeps its message", func(t *testing.T) {
		w, body := run(errs.Wrap(unit.ErrUnitNotAvailable, "failed to book"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "unit is not available for booking", body["message"])
		assert.Equal(t, "conflict", body["error"])
	})

	t.Run("internal error is masked", func(t *testing.T) {
		w, body := run(errs.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body["message"])
		assert.Equal(t, "internal error", body["error"])
	})

	t.Run("nil error still responds", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid request format")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, c.Errors, 1)
	})
}
