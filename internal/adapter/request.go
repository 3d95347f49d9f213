package adapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-notice-web/models"
	"github.com/go-resty/resty/v2"
)

// requestOption customizes a single outgoing request.
type requestOption func(*resty.Request)

// withHeader sets a request header, replacing the JSON Content-Type default
// when key is Content-Type.
func withHeader(key, value string) requestOption {
	return func(r *resty.Request) {
		r.SetHeader(key, value)
	}
}

// send executes one request against the API base URL while the progress
// tracker counts it as in flight.
func (h *httpNoticeAPI) send(ctx context.Context, method, path string, body any, opts ...requestOption) (*resty.Response, error) {
	h.tracker.Start()
	defer h.tracker.Stop()

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}
	if body != nil {
		req.SetBody(body)
	}

	h.logger.Debug().Str("method", method).Str("path", path).Msg("api request")

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	h.logger.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode()).Msg("api response")
	return resp, nil
}

// doRequest sends a request and unwraps the backend envelope, returning its
// Data on 2xx.
func doRequest[T any](ctx context.Context, h *httpNoticeAPI, method, path string, body any, opts ...requestOption) (T, error) {
	var zero T

	resp, err := h.send(ctx, method, path, body, opts...)
	if err != nil {
		return zero, err
	}

	var envelope models.APIResponse[T]
	decodeErr := json.Unmarshal(resp.Body(), &envelope)

	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		statusErr := &StatusError{Status: status}
		if decodeErr == nil {
			statusErr.Message = envelope.Message
			statusErr.Errors = envelope.Errors
		}
		return zero, statusErr
	}
	if decodeErr != nil {
		return zero, &DecodeError{Status: status, Err: decodeErr}
	}

	return envelope.Data, nil
}
