// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-notice-web/internal/app"
	"github.com/MKhiriev/go-notice-web/models"
)

const (
	FieldURL            = "url"
	FieldRecaptchaToken = "recaptcha_token"
)

// MaxWebhookURLLength is measured on the raw, untrimmed input.
const MaxWebhookURLLength = 500

const webhookPathPrefix = "/api/webhooks/"

var (
	webhookIDPattern    = regexp.MustCompile(`^\d{17,20}$`)
	webhookTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{64,68}$`)

	discordHosts = map[string]struct{}{
		"discord.com":    {},
		"discordapp.com": {},
	}
)

// WebhookValidationResult is the outcome of ValidateDiscordWebhookURL.
// Message is empty when IsValid is true.
type WebhookValidationResult struct {
	IsValid bool
	Message string
}

func invalid(msg string) WebhookValidationResult {
	return WebhookValidationResult{Message: msg}
}

// ValidateDiscordWebhookURL runs the webhook checks in order and stops at the
// first failure.
func ValidateDiscordWebhookURL(raw string) WebhookValidationResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return invalid(app.MsgWebhookURLRequired)
	}
	if len(raw) > MaxWebhookURLLength {
		return invalid(app.MsgWebhookURLTooLong)
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return invalid(app.MsgWebhookURLMalformed)
	}
	if u.Scheme != "https" {
		return invalid(app.MsgWebhookURLNotHTTPS)
	}
	if _, ok := discordHosts[strings.ToLower(u.Hostname())]; !ok {
		return invalid(app.MsgWebhookURLNotDiscord)
	}

	path := u.EscapedPath()
	if !strings.HasPrefix(path, webhookPathPrefix) {
		return invalid(app.MsgWebhookURLBadPath)
	}

	// "/api/webhooks/{id}/{token}" splits into ["", "api", "webhooks", id, token, ...]
	parts := strings.Split(path, "/")
	if len(parts) < 5 || parts[3] == "" || parts[4] == "" {
		return invalid(app.MsgWebhookURLMissingParts)
	}
	if !webhookIDPattern.MatchString(parts[3]) {
		return invalid(app.MsgWebhookURLBadID)
	}
	if !webhookTokenPattern.MatchString(parts[4]) {
		return invalid(app.MsgWebhookURLBadToken)
	}

	return WebhookValidationResult{IsValid: true}
}

// NormalizeWebhookURL drops the query and fragment and a single trailing
// slash. Input that does not parse as an absolute URL is returned trimmed.
func NormalizeWebhookURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return trimmed
	}

	path := u.EscapedPath()
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	return u.Scheme + "://" + u.Host + path
}

// FieldError carries the user-facing message of a failed check. It unwraps
// to one of the package sentinel errors.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// WebhookValidator validates webhook registration input.
type WebhookValidator struct{}

func NewWebhookValidator() Validator {
	return &WebhookValidator{}
}

// Validate accepts a raw URL string or a models.WebhookRegistrationRequest.
// Without field names every field is checked.
func (v *WebhookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateURL(value)
	case models.WebhookRegistrationRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.WebhookRegistrationRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *WebhookValidator) validateRequest(_ context.Context, req models.WebhookRegistrationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL, FieldRecaptchaToken}
	}

	for _, field := range fields {
		switch field {
		case FieldURL:
			if err := v.validateURL(req.URL); err != nil {
				return err
			}
		case FieldRecaptchaToken:
			if strings.TrimSpace(req.RecaptchaToken) == "" {
				return &FieldError{
					Field:   FieldRecaptchaToken,
					Message: app.MsgRecaptchaTokenRequired,
					Err:     ErrMissingRecaptchaToken,
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *WebhookValidator) validateURL(raw string) error {
	res := ValidateDiscordWebhookURL(raw)
	if res.IsValid {
		return nil
	}
	return &FieldError{Field: FieldURL, Message: res.Message, Err: ErrInvalidWebhookURL}
}
