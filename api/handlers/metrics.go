package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/legalaid-ng/legalaid-api/api"
)

const defaultMetricsLimit = 20

// formatRouteMetrics converts duration fields to milliseconds for JSON serialization
func formatRouteMetrics(routes []*api.RouteMetrics) []map[string]interface{} {
	result := make([]map[string]interface{}, len(routes))
	for i, route := range routes {
		result[i] = map[string]interface{}{
			"method":      route.Method,
			"path":        route.Path,
			"count":       route.Count,
			"errorCount":  route.ErrorCount,
			"avgTime":     route.AvgTime.Milliseconds(),
			"minTime":     route.MinTime.Milliseconds(),
			"maxTime":     route.MaxTime.Milliseconds(),
			"lastRequest": route.LastRequest,
		}
	}
	return result
}

// MetricsHandler handles metrics dashboard requests
type MetricsHandler struct {
	Metrics *api.MetricsCollector
}

// GetMetricsDashboard returns request totals and the slowest routes
func (m MetricsHandler) GetMetricsDashboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultMetricsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	summary := m.Metrics.Summary(time.Now(), limit)
	errorRate := 0.0
	if summary.TotalRequests > 0 {
		errorRate = float64(summary.TotalErrors) / float64(summary.TotalRequests)
	}

	response := map[string]interface{}{
		"summary": map[string]interface{}{
			"totalRequests": summary.TotalRequests,
			"totalErrors":   summary.TotalErrors,
			"errorRate":     errorRate,
		},
		"slowest": formatRouteMetrics(summary.Slowest),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
