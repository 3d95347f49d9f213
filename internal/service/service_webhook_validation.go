package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/validators"
	"github.com/MKhiriev/go-notice-web/models"
)

// WebhookValidationService rejects invalid registrations before they reach
// the backend.
type WebhookValidationService struct {
	inner     WebhookService
	validator validators.Validator
}

func NewWebhookValidationService() WebhookServiceWrapper {
	return &WebhookValidationService{
		validator: validators.NewWebhookValidator(),
	}
}

func (v *WebhookValidationService) Wrap(inner WebhookService) WebhookService {
	v.inner = inner
	return v
}

func (v *WebhookValidationService) Register(ctx context.Context, req models.WebhookRegistrationRequest) (models.WebhookRegistrationResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.WebhookRegistrationResult{}, adapter.Normalize(validationError(err))
	}

	return v.inner.Register(ctx, req)
}

func validationError(err error) error {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return &adapter.ValidationError{Message: fieldErr.Message, Err: err}
	}
	return err
}
