package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoutePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/app/cases/FA-1A2B3C4D", "/app/cases/{caseNumber}"},
		{"/web/cases/CR-00FF00FF/cv", "/web/cases/{caseNumber}/cv"},
		{"/admin/cases/507f1f77bcf86cd799439011/assign", "/admin/cases/{id}/assign"},
		{"/app/notifications/8f14e45f-ceea-467f-a0e6-6e7d1f2b6c3a/read", "/app/notifications/{id}/read"},
		{"/app/dashboard/", "/app/dashboard"},
		{"/", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeRoutePath(tt.path), tt.path)
	}
}

func TestMetricsCollector(t *testing.T) {
	mc := NewMetricsCollector(2, time.Hour)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mc.Record(http.MethodGet, "/app/cases/FA-1A2B3C4D", 200, start, 10*time.Millisecond)
	mc.Record(http.MethodGet, "/app/cases/CR-00FF00FF", 404, start, 30*time.Millisecond)
	mc.Record(http.MethodPost, "/app/cases", 201, start, 5*time.Millisecond)
	// route table is full
	mc.Record(http.MethodGet, "/app/dashboard", 200, start, time.Second)

	s := mc.Summary(start.Add(time.Minute), 10)
	assert.Equal(t, int64(3), s.TotalRequests)
	assert.Equal(t, int64(1), s.TotalErrors)
	require.Len(t, s.Slowest, 2)
	assert.Equal(t, "/app/cases/{caseNumber}", s.Slowest[0].Path)
	assert.Equal(t, int64(2), s.Slowest[0].Count)
	assert.Equal(t, int64(1), s.Slowest[0].ErrorCount)
	assert.Equal(t, 20*time.Millisecond, s.Slowest[0].AvgTime)
	assert.Equal(t, 10*time.Millisecond, s.Slowest[0].MinTime)
	assert.Equal(t, 30*time.Millisecond, s.Slowest[0].MaxTime)

	s = mc.Summary(start.Add(2*time.Hour), 10)
	assert.Empty(t, s.Slowest)
}

func TestRequestLogMiddleware(t *testing.T) {
	mc := NewMetricsCollector(10, time.Hour)
	h := RequestLogMiddleware(mc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/dashboard", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	s := mc.Summary(time.Now(), 0)
	require.Len(t, s.Slowest, 1)
	assert.Equal(t, "/app/dashboard", s.Slowest[0].Path)
	assert.Equal(t, int64(1), s.TotalErrors)
}

func TestRequestLogMiddleware_NilCollector(t *testing.T) {
	h := RequestLogMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
