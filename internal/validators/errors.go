package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidWebhookURL     = errors.New("invalid webhook URL")
	ErrMissingRecaptchaToken = errors.New("recaptcha token is required")
)
