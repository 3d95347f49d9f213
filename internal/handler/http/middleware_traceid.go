package http

import (
	"net/http"
	"regexp"

	"github.com/MKhiriev/go-notice-web/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// inboundTraceIDPattern matches the caller trace IDs that are reused as is.
var inboundTraceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// withTraceID attaches a request-scoped child logger carrying trace_id and
// echoes the ID in the response. A well-formed X-Trace-ID from the caller
// is reused, anything else is replaced with a fresh ID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !inboundTraceIDPattern.MatchString(traceID) {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
