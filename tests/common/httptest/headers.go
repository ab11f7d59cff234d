//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const cacheStatusHeader = "X-Cache"

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertCacheStatus checks the response cache marker; "" means the cache was bypassed.
func AssertCacheStatus(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	assert.Equal(t, want, w.Header().Get(cacheStatusHeader), "unexpected cache status")
}
