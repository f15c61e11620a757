package api

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SlowRequestThreshold is the duration above which a request is logged as slow
const SlowRequestThreshold = time.Second

// RequestLogMiddleware logs every request with a generated request id and feeds the
// collector. A nil collector only logs.
func RequestLogMiddleware(mc *MetricsCollector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.New().String()
			w.Header().Set("X-Request-Id", requestID)

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			next.ServeHTTP(wrapped, r)
			duration := time.Since(start)

			if r.URL.Path != "/health" {
				mc.Record(r.Method, r.URL.Path, wrapped.statusCode, start, duration)
			}

			fields := []interface{}{
				"requestId", requestID,
				"method", r.Method,
				"host", r.Host,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", duration,
			}
			if duration > SlowRequestThreshold {
				zap.S().Warnw("Slow request detected", fields...)
				return
			}
			zap.S().Infow("request", fields...)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
// It implements http.Hijacker to support WebSocket upgrades
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Hijack implements http.Hijacker to support WebSocket upgrades
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		rw.statusCode = http.StatusSwitchingProtocols
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not implement http.Hijacker")
}
