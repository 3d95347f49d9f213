// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notice-web/internal/app"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          app.MsgBadRequest,
	http.StatusUnauthorized:        app.MsgUnauthorized,
	http.StatusForbidden:           app.MsgForbidden,
	http.StatusNotFound:            app.MsgNotFound,
	http.StatusConflict:            app.MsgConflict,
	http.StatusTooManyRequests:     app.MsgTooManyRequests,
	http.StatusInternalServerError: app.MsgServerError,
	http.StatusBadGateway:          app.MsgServerError,
	http.StatusServiceUnavailable:  app.MsgServerError,
	http.StatusGatewayTimeout:      app.MsgServerError,
}

// Normalize converts any error into an [*APIError]. The message is picked
// in this order: backend error list, backend message, status text, timeout,
// network failure, validation message, generic fallback. Raw error text of
// unclassified failures is never exposed. Normalize(nil) is nil.
func Normalize(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	out := &APIError{cause: err}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		out.Status = statusErr.Status
		switch {
		case len(statusErr.Errors) > 0:
			out.Message = strings.Join(statusErr.Errors, " ")
		case statusErr.Message != "":
			out.Message = statusErr.Message
		default:
			out.Message = statusMessage(statusErr.Status)
		}
		return out
	}

	var validationErr *ValidationError
	switch {
	case isTimeout(err):
		out.Message = app.MsgTimeout
	case isNetwork(err):
		out.Message = app.MsgNetworkError
	case errors.As(err, &validationErr) && validationErr.Message != "":
		out.Message = validationErr.Message
	default:
		out.Message = app.MsgUnknownError
	}

	return out
}

func statusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return app.MsgUnknownError
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetwork(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// registrationError applies the webhook-specific wording on top of the
// normalized error.
func registrationError(err error) *APIError {
	apiErr := Normalize(err)
	switch apiErr.Status {
	case http.StatusConflict:
		return &APIError{Message: app.MsgWebhookAlreadyRegistered, Status: apiErr.Status, cause: err}
	case http.StatusTooManyRequests:
		return &APIError{Message: app.MsgTooManyWebhooks, Status: apiErr.Status, cause: err}
	default:
		return apiErr
	}
}
