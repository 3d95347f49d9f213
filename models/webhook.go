// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WebhookRegistrationRequest is submitted to the backend to subscribe a
// Discord webhook to new notices.
type WebhookRegistrationRequest struct {
	// URL is the normalized Discord webhook URL.
	URL string `json:"url"`

	// RecaptchaToken is the token produced by the reCAPTCHA widget.
	RecaptchaToken string `json:"recaptchaToken"`
}

// WebhookRegistrationResult is the payload of a successful registration.
type WebhookRegistrationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
