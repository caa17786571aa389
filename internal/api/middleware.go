package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/dosecalc/internal/logging"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// WithLogging attaches a request-scoped logger and trace ID to the context,
// echoes the trace ID in the response header and logs completion.
func WithLogging(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := r.Context()
		if id := r.Header.Get(logging.TraceIDHeader); id != "" {
			ctx = logging.ContextWithTraceID(ctx, id)
		}
		traceID := logging.GetOrGenerateTraceID(ctx)
		ctx = logging.ContextWithTraceID(ctx, traceID)

		reqLogger := logger.With().Str("trace_id", traceID).Logger()
		ctx = reqLogger.WithContext(ctx)
		w.Header().Set(logging.TraceIDHeader, traceID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		reqLogger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", rec.status).
			Dur("duration_ms", time.Since(start)).
			Msg("request completed")
	})
}

// WithRecover turns a handler panic into a 500 response.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				zerolog.Ctx(r.Context()).Error().Interface("panic", rv).Msg("handler panicked")
				ErrorResponse(w, r, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
