// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-notice-web/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
		wantStatus  int
	}{
		{
			name:        "errors list wins",
			err:         &StatusError{Status: 400, Message: "ignored", Errors: []string{"a", "b"}},
			wantMessage: "a b",
			wantStatus:  400,
		},
		{
			name:        "backend message",
			err:         &StatusError{Status: 422, Message: "bad input"},
			wantMessage: "bad input",
			wantStatus:  422,
		},
		{
			name:        "404 without body",
			err:         &StatusError{Status: http.StatusNotFound},
			wantMessage: app.MsgNotFound,
			wantStatus:  http.StatusNotFound,
		},
		{
			name:        "400 without body",
			err:         &StatusError{Status: http.StatusBadRequest},
			wantMessage: app.MsgBadRequest,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "401",
			err:         &StatusError{Status: http.StatusUnauthorized},
			wantMessage: app.MsgUnauthorized,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "403",
			err:         &StatusError{Status: http.StatusForbidden},
			wantMessage: app.MsgForbidden,
			wantStatus:  http.StatusForbidden,
		},
		{
			name:        "409",
			err:         &StatusError{Status: http.StatusConflict},
			wantMessage: app.MsgConflict,
			wantStatus:  http.StatusConflict,
		},
		{
			name:        "429",
			err:         &StatusError{Status: http.StatusTooManyRequests},
			wantMessage: app.MsgTooManyRequests,
			wantStatus:  http.StatusTooManyRequests,
		},
		{
			name:        "503",
			err:         &StatusError{Status: http.StatusServiceUnavailable},
			wantMessage: app.MsgServerError,
			wantStatus:  http.StatusServiceUnavailable,
		},
		{
			name:        "unmapped status without body",
			err:         &StatusError{Status: http.StatusTeapot},
			wantMessage: app.MsgUnknownError,
			wantStatus:  http.StatusTeapot,
		},
		{
			name:        "wrapped status error",
			err:         fmt.Errorf("load: %w", &StatusError{Status: http.StatusBadGateway}),
			wantMessage: app.MsgServerError,
			wantStatus:  http.StatusBadGateway,
		},
		{
			name:        "deadline exceeded",
			err:         &TransportError{Method: "GET", Path: "/stats", Err: context.DeadlineExceeded},
			wantMessage: app.MsgTimeout,
		},
		{
			name:        "net timeout",
			err:         &net.OpError{Op: "dial", Err: timeoutErr{}},
			wantMessage: app.MsgTimeout,
		},
		{
			name:        "connection refused",
			err:         &TransportError{Method: "GET", Path: "/stats", Err: errors.New("connection refused")},
			wantMessage: app.MsgNetworkError,
		},
		{
			name:        "validation",
			err:         &ValidationError{Message: app.MsgWebhookURLNotHTTPS},
			wantMessage: app.MsgWebhookURLNotHTTPS,
		},
		{
			name:        "decode failure",
			err:         &DecodeError{Status: 200, Err: errors.New("unexpected EOF")},
			wantMessage: app.MsgUnknownError,
		},
		{
			name:        "plain error text is not exposed",
			err:         errors.New("secret internals"),
			wantMessage: app.MsgUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantMessage, got.Error())
		})
	}
}

func TestNormalize_Nil(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}

func TestNormalize_Idempotent(t *testing.T) {
	first := Normalize(&StatusError{Status: http.StatusNotFound})
	second := Normalize(fmt.Errorf("again: %w", first))
	assert.Same(t, first, second)
}

func TestNormalize_KeepsCause(t *testing.T) {
	err := Normalize(&TransportError{Err: context.DeadlineExceeded})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRegistrationError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
		wantStatus  int
	}{
		{
			name:        "conflict overrides backend message",
			err:         &StatusError{Status: http.StatusConflict, Message: "duplicate"},
			wantMessage: app.MsgWebhookAlreadyRegistered,
			wantStatus:  http.StatusConflict,
		},
		{
			name:        "too many",
			err:         &StatusError{Status: http.StatusTooManyRequests},
			wantMessage: app.MsgTooManyWebhooks,
			wantStatus:  http.StatusTooManyRequests,
		},
		{
			name:        "other status keeps normalized message",
			err:         &StatusError{Status: http.StatusBadRequest, Errors: []string{"url invalid"}},
			wantMessage: "url invalid",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "network",
			err:         &TransportError{Err: errors.New("refused")},
			wantMessage: app.MsgNetworkError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := registrationError(tt.err)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}
