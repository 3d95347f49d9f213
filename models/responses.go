// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the wire types exchanged with the notice backend.
package models

// APIResponse is the envelope every backend endpoint answers with.
// On success the payload is carried in Data; on failure Message and/or
// Errors describe what went wrong.
type APIResponse[T any] struct {
	// Success reports whether the backend handled the request.
	Success bool `json:"success"`

	// Data is the endpoint-specific payload.
	Data T `json:"data"`

	// Message is an optional human-readable description.
	Message string `json:"message,omitempty"`

	// Errors is an optional list of validation or processing errors.
	Errors []string `json:"errors,omitempty"`
}
