package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnvScript = `<script>window.__ENV__ = {"PUBLIC_API_BASE_URL":"http://localhost:3001/api","PUBLIC_RECAPTCHA_SITE_KEY":""};</script>`

func pageHandler(contentType, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.Write([]byte(body))
	})
}

func TestInjectEnv(t *testing.T) {
	env := environment.Defaults()

	tests := []struct {
		name   string
		page   string
		want   string
		wantOK bool
	}{
		{
			name:   "inserted before head close",
			page:   "<html><head><title>x</title></head><body></body></html>",
			want:   "<html><head><title>x</title>" + testEnvScript + "</head><body></body></html>",
			wantOK: true,
		},
		{
			name:   "only the first head close is used",
			page:   "<head></head><pre></head></pre>",
			want:   "<head>" + testEnvScript + "</head><pre></head></pre>",
			wantOK: true,
		},
		{
			name:   "no head close leaves the page unchanged",
			page:   "<html><body>fragment</body></html>",
			want:   "<html><body>fragment</body></html>",
			wantOK: false,
		},
		{
			name:   "empty page",
			page:   "",
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := injectEnv([]byte(tt.page), env)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestInjectEnv_EscapesScriptBreakout(t *testing.T) {
	env := environment.Resolved{
		APIBaseURL:       "</script><script>alert(1)</script>",
		RecaptchaSiteKey: "a&b",
	}

	got, ok, err := injectEnv([]byte("<head></head>"), env)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, strings.Count(string(got), "</script>"))
	assert.Contains(t, string(got), `\u003c/script\u003e\u003cscript\u003ealert(1)\u003c/script\u003e`)
	assert.Contains(t, string(got), `a\u0026b`)
}

func TestWithBootstrap(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantScript  bool
	}{
		{
			name:        "declared HTML",
			contentType: "text/html; charset=utf-8",
			body:        "<!DOCTYPE html><html><head></head><body></body></html>",
			wantScript:  true,
		},
		{
			name:       "sniffed HTML",
			body:       "<!DOCTYPE html><html><head></head><body></body></html>",
			wantScript: true,
		},
		{
			name:        "JSON is left alone",
			contentType: "application/json",
			body:        `{"html":"<head></head>"}`,
		},
		{
			name:        "plain text is left alone",
			contentType: "text/plain",
			body:        "<head></head>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			rr := serve(h.withBootstrap(pageHandler(tt.contentType, tt.body)), httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			if tt.wantScript {
				assert.Contains(t, rr.Body.String(), testEnvScript+"</head>")
			} else {
				assert.Equal(t, tt.body, rr.Body.String())
			}
		})
	}
}

func TestWithBootstrap_PreservesStatusAndHeaders(t *testing.T) {
	h := newTestHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Length", "13")
		w.Header().Set("X-Page", "home")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("<head></head>"))
	})

	rr := serve(h.withBootstrap(next), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "home", rr.Header().Get("X-Page"))
	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.Equal(t, "<head>"+testEnvScript+"</head>", rr.Body.String())
}

func TestWithBootstrap_AttachesEnvironmentToContext(t *testing.T) {
	deps := newTestDeps()
	deps.dynamic[environment.KeyRecaptchaSiteKey] = "ctx-key"
	h := deps.handler(t)

	var (
		got environment.Resolved
		ok  bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = environment.FromContext(r.Context())
	})

	serve(h.withBootstrap(next), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.Equal(t, "ctx-key", got.RecaptchaSiteKey)
}

func TestWithBootstrap_MissingHeadLogLevel(t *testing.T) {
	tests := []struct {
		mode      string
		wantLevel string
	}{
		{mode: config.ModeDevelopment, wantLevel: `"level":"error"`},
		{mode: config.ModeProduction, wantLevel: `"level":"warn"`},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			deps := newTestDeps()
			deps.mode = tt.mode
			h := deps.handler(t)

			var buf bytes.Buffer
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

			rr := serve(h.withBootstrap(pageHandler("text/html", "<p>no head</p>")), req)

			assert.Equal(t, "<p>no head</p>", rr.Body.String())
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), "environment not injected")
		})
	}
}

func TestBufferedResponseWriter_FirstStatusWins(t *testing.T) {
	bw := &bufferedResponseWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

	bw.WriteHeader(http.StatusNotFound)
	bw.WriteHeader(http.StatusInternalServerError)
	_, err := bw.Write([]byte("body"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, bw.status)
	assert.Equal(t, "body", bw.buf.String())
}
