package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidWebhookURL:     http.StatusBadRequest,
	validators.ErrMissingRecaptchaToken: http.StatusBadRequest,
	validators.ErrUnsupportedType:       http.StatusInternalServerError,
	validators.ErrUnknownField:          http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// statusFromError picks the status of a page that reports err. Backend 4xx
// statuses are passed on, backend 5xx and transport failures become 502.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status >= http.StatusInternalServerError:
			return http.StatusBadGateway
		case apiErr.Status >= http.StatusBadRequest:
			return apiErr.Status
		}
	}

	var transportErr *adapter.TransportError
	if errors.As(err, &transportErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
