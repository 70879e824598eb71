package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/pkg/metrics"
)

type StatusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// LoggerMiddleware logs every request and feeds the request counters.
func LoggerMiddleware(logger zerolog.Logger, m *metrics.ServerMetrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &StatusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			elapsed := time.Since(start)
			m.ObserveRequest(r.URL.Path, strconv.Itoa(recorder.Status()), float64(elapsed.Milliseconds()))
			logger.Info().
				Str("request_id", GetRequestID(r)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", recorder.Status()).
				Dur("elapsed", elapsed).
				Msg("request completed")
		})
	}
}
