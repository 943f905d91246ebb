// Package middleware contains the HTTP middleware specific to this API.
// Generic concerns (request IDs, panics, access logs) use chi's middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/studybuddy-api/internal/api/shared"
	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
)

// TraceIDHeader carries the trace ID on requests and responses.
const TraceIDHeader = "X-Trace-ID"

// NewTraceMiddleware returns middleware that assigns every request a trace
// ID and stores a logger tagged with it in the request context. A valid UUID
// supplied in the X-Trace-ID header is reused.
//
// It should be applied early in the chain so that handlers and services
// log with the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = shared.NewTraceID()
			}

			log := base.With(slog.String("trace_id", traceID))
			ctx := shared.WithTraceID(r.Context(), traceID)
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
