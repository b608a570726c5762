package middleware

import (
	"net/http"
	"time"

	"wordpairs/internal/metrics"

	"go.uber.org/zap"
)

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Logging logs every request and records it in m when m is not nil.
// A request whose handler panics is recorded as a 500 before the panic continues.
func Logging(logger *zap.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				v := recover()
				if v != nil {
					rec.status = http.StatusInternalServerError
				}

				elapsed := time.Since(start)
				if m != nil {
					m.ObserveRequest(r.Method, r.Pattern, rec.status, elapsed)
				}

				logger.Info("HTTP request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("route", r.Pattern),
					zap.Int("status", rec.status),
					zap.Duration("duration", elapsed),
					zap.String("remote_addr", r.RemoteAddr),
				)

				if v != nil {
					panic(v)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
