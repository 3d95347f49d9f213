// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/gabriel-vasile/mimetype"
)

var headCloseTag = []byte("</head>")

// withBootstrap resolves the public configuration once per request, stores it
// in the request context for the page handlers and embeds it into the
// rendered HTML as window.__ENV__, right before the first </head>.
//
// The page response is buffered so the document can be rewritten before it
// is sent. Responses that are not HTML pass through untouched.
func (h *Handler) withBootstrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		env := h.resolver.Resolve()
		r = r.WithContext(environment.WithContext(r.Context(), env))

		bw := &bufferedResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(bw, r)

		body := bw.buf.Bytes()
		if isHTML(w.Header(), body) {
			injected, ok, err := injectEnv(body, env)
			switch {
			case err != nil:
				log.Err(err).Msg("failed to encode environment for page")
			case !ok:
				h.logMissingHead(log, r)
			default:
				body = injected
			}
		}

		w.Header().Del("Content-Length")
		w.WriteHeader(bw.status)
		if _, err := w.Write(body); err != nil {
			log.Err(err).Msg("failed to write page")
		}
	})
}

func (h *Handler) logMissingHead(log *logger.Logger, r *http.Request) {
	event := log.Warn()
	if h.mode == config.ModeDevelopment {
		event = log.Error()
	}
	event.Str("uri", r.RequestURI).Msg("page has no </head>, environment not injected")
}

// isHTML trusts an explicit Content-Type and sniffs the body otherwise.
func isHTML(header http.Header, body []byte) bool {
	contentType := header.Get("Content-Type")
	if contentType == "" {
		contentType = mimetype.Detect(body).String()
	}
	return mimetype.EqualsAny(contentType, "text/html")
}

// injectEnv inserts the bootstrap script before the first </head>. The
// second result is false when the document has no </head>, in which case
// page is returned unchanged.
func injectEnv(page []byte, env environment.Resolved) ([]byte, bool, error) {
	idx := bytes.Index(page, headCloseTag)
	if idx < 0 {
		return page, false, nil
	}

	// json.Marshal escapes <, > and &, so no value can close the script element
	payload, err := json.Marshal(env)
	if err != nil {
		return page, false, fmt.Errorf("marshal environment: %w", err)
	}

	script := fmt.Sprintf("<script>window.__ENV__ = %s;</script>", payload)

	out := make([]byte, 0, len(page)+len(script))
	out = append(out, page[:idx]...)
	out = append(out, script...)
	out = append(out, page[idx:]...)
	return out, true, nil
}

// bufferedResponseWriter collects the body of a page in memory. Headers are
// shared with the wrapped writer; the status is held back until the page
// has been rewritten.
type bufferedResponseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	buf         bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.buf.Write(b)
}
