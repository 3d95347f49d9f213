package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Route kinds reported in the access log.
const (
	routeKindPage   = "page"
	routeKindConfig = "config"
	routeKindProxy  = "proxy"
	routeKindOther  = "other"
)

// withLogging writes one access log entry per request: the matched chi
// route pattern and its kind next to the usual request and response data.
// Server errors are logged at error level and client errors at warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		route := routePattern(r)

		accessLogEvent(log, lw.status).
			Str("uri", uri).
			Str("method", method).
			Str("route", route).
			Str("kind", routeKind(route)).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request served")
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}

// routePattern returns the chi pattern that served r, or "" when no route
// matched. chi fills the pattern in while routing, so it is only complete
// after the handler returned.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

func routeKind(pattern string) string {
	switch {
	case pattern == "/api/env" || pattern == "/api/health":
		return routeKindConfig
	case strings.HasPrefix(pattern, "/api/"):
		return routeKindProxy
	case pattern == "/" || pattern == "/notices":
		return routeKindPage
	default:
		return routeKindOther
	}
}
