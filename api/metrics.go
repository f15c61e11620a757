package api

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
)

// RouteMetrics aggregates timings for one method and normalized path
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector keeps in-memory request statistics per route. Entries older than
// the window are dropped on the next Summary call.
type MetricsCollector struct {
	mu            sync.RWMutex
	routes        map[string]*RouteMetrics
	maxRoutes     int
	window        time.Duration
	totalRequests int64
	totalErrors   int64
}

// NewMetricsCollector returns a collector tracking at most maxRoutes distinct routes
func NewMetricsCollector(maxRoutes int, window time.Duration) *MetricsCollector {
	return &MetricsCollector{
		routes:    make(map[string]*RouteMetrics),
		maxRoutes: maxRoutes,
		window:    window,
	}
}

// Record adds one finished request
func (mc *MetricsCollector) Record(method, path string, status int, start time.Time, d time.Duration) {
	if mc == nil {
		return
	}
	path = normalizeRoutePath(path)
	key := method + " " + path

	mc.mu.Lock()
	defer mc.mu.Unlock()

	m, ok := mc.routes[key]
	if !ok {
		if len(mc.routes) >= mc.maxRoutes {
			return
		}
		m = &RouteMetrics{Method: method, Path: path, MinTime: d}
		mc.routes[key] = m
	}
	m.Count++
	m.TotalTime += d
	m.AvgTime = m.TotalTime / time.Duration(m.Count)
	m.LastRequest = start
	if d < m.MinTime {
		m.MinTime = d
	}
	if d > m.MaxTime {
		m.MaxTime = d
	}
	mc.totalRequests++
	if status >= 400 {
		m.ErrorCount++
		mc.totalErrors++
	}
}

// MetricsSummary is the admin view of the collected statistics
type MetricsSummary struct {
	TotalRequests int64           `json:"totalRequests"`
	TotalErrors   int64           `json:"totalErrors"`
	Slowest       []*RouteMetrics `json:"slowest"`
}

// Summary drops stale routes and returns the limit slowest routes by average time
func (mc *MetricsCollector) Summary(now time.Time, limit int) MetricsSummary {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	routes := make([]*RouteMetrics, 0, len(mc.routes))
	for key, m := range mc.routes {
		if now.Sub(m.LastRequest) > mc.window {
			delete(mc.routes, key)
			continue
		}
		cp := *m
		routes = append(routes, &cp)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].AvgTime == routes[j].AvgTime {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].AvgTime > routes[j].AvgTime
	})
	if limit > 0 && len(routes) > limit {
		routes = routes[:limit]
	}
	return MetricsSummary{
		TotalRequests: mc.totalRequests,
		TotalErrors:   mc.totalErrors,
		Slowest:       routes,
	}
}

var (
	objectIDPattern   = regexp.MustCompile(`/[0-9a-fA-F]{24}(/|$)`)
	uuidPattern       = regexp.MustCompile(`/[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}(/|$)`)
	caseNumberPattern = regexp.MustCompile(`/[A-Z]{2}-[0-9A-F]{8}(/|$)`)
)

// normalizeRoutePath replaces ids and case numbers with placeholders
//   - /app/cases/FA-1A2B3C4D -> /app/cases/{caseNumber}
//   - /admin/cases/507f1f77bcf86cd799439011/assign -> /admin/cases/{id}/assign
func normalizeRoutePath(path string) string {
	path = objectIDPattern.ReplaceAllString(path, "/{id}$1")
	path = uuidPattern.ReplaceAllString(path, "/{id}$1")
	path = caseNumberPattern.ReplaceAllString(path, "/{caseNumber}$1")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
