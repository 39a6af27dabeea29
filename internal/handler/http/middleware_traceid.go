package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses the client's X-Trace-ID or issues one, echoes it back
// and attaches a child logger carrying it to the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	traceIDs := utils.NewUUIDGenerator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = context.WithValue(l.WithContext(ctx), utils.TraceIDCtxKey, traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
