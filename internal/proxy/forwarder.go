package proxy

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
)

// skippedRequestHeaders are not copied to the backend request.
var skippedRequestHeaders = map[string]struct{}{
	"Host":       {},
	"Connection": {},
}

// forwardedHeaderKey carries the inbound headers to the pre-request hook.
type forwardedHeaderKey struct{}

// Forwarder is an [http.Handler] that relays requests to the backend API.
type Forwarder struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewForwarder returns a [Forwarder] targeting cfg.BackendURL. A zero
// cfg.Timeout disables the outbound deadline.
func NewForwarder(cfg config.Proxy, log *logger.Logger) *Forwarder {
	client := utils.NewHTTPClient("", cfg.Timeout, log)
	client.SetPreRequestHook(restoreHeader)
	if transport, err := client.Transport(); err == nil {
		// Accept-Encoding is relayed as sent and the body is not decoded.
		transport.DisableCompression = true
	}

	return &Forwarder{
		client:  client,
		baseURL: cfg.BackendURL,
		logger:  log,
	}
}

// forwardedHeader returns a copy of h without the headers the backend must
// not receive.
func forwardedHeader(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for key, values := range h {
		if _, skip := skippedRequestHeaders[http.CanonicalHeaderKey(key)]; skip {
			continue
		}
		out[key] = append([]string(nil), values...)
	}
	return out
}

// restoreHeader replaces the headers resty put together (User-Agent,
// detected Content-Type, Accept) with the inbound set stored in the request
// context. An empty User-Agent entry keeps net/http from adding its own.
func restoreHeader(_ *resty.Client, req *http.Request) error {
	header, ok := req.Context().Value(forwardedHeaderKey{}).(http.Header)
	if !ok {
		return nil
	}
	req.Header = header.Clone()
	if _, set := req.Header["User-Agent"]; !set {
		req.Header["User-Agent"] = []string{""}
	}
	return nil
}

// Target builds the backend URL for a proxied path. The pieces are joined
// as given, without cleaning or re-encoding.
func (f *Forwarder) Target(path, rawQuery string) string {
	target := f.baseURL + "/" + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}

// ServeHTTP forwards the request using the chi wildcard as the backend path.
func (f *Forwarder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.Forward(w, r, chi.URLParam(r, "*"))
}

// Forward relays r to the backend path and streams the answer into w.
func (f *Forwarder) Forward(w http.ResponseWriter, r *http.Request, path string) {
	log := logger.FromRequest(r)
	target := f.Target(path, r.URL.RawQuery)

	ctx := context.WithValue(r.Context(), forwardedHeaderKey{}, forwardedHeader(r.Header))
	req := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("target", target).Msg("proxy: reading request body failed")
			writeError(w, http.StatusBadGateway)
			return
		}
		if len(body) > 0 {
			req.SetBody(body)
		}
	}

	resp, err := req.Execute(r.Method, target)
	if err != nil {
		status := http.StatusBadGateway
		if isTimeout(err) {
			status = http.StatusGatewayTimeout
		}
		log.Err(err).
			Str("method", r.Method).
			Str("target", target).
			Int("status", status).
			Msg("proxy error")
		writeError(w, status)
		return
	}

	body := resp.RawBody()
	defer body.Close()

	header := w.Header()
	for key, values := range resp.Header() {
		header[key] = append([]string(nil), values...)
	}
	w.WriteHeader(resp.StatusCode())

	if _, err = io.Copy(w, body); err != nil {
		log.Err(err).Str("target", target).Msg("proxy: streaming response body failed")
	}
}

func writeError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
