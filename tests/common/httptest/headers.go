//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks each expected header. An empty value asserts the
// header is absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.NotContains(t, w.Header(), http.CanonicalHeaderKey(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertQuotaHeaders checks the headers the reservation rate limiter writes.
func AssertQuotaHeaders(t *testing.T, w *httptest.ResponseRecorder, limit, remaining int) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{
		"X-RateLimit-Limit":     strconv.Itoa(limit),
		"X-RateLimit-Remaining": strconv.Itoa(remaining),
	})
}
