package service

import (
	"context"

	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/app"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/validators"
	"github.com/MKhiriev/go-notice-web/models"
)

type webhookService struct {
	api adapter.NoticeAPI

	logger *logger.Logger
}

func NewWebhookService(api adapter.NoticeAPI, logger *logger.Logger) WebhookService {
	return &webhookService{api: api, logger: logger}
}

// Register sends the normalized URL to the backend. It expects req to be
// validated already; see [NewWebhookValidationService].
func (s *webhookService) Register(ctx context.Context, req models.WebhookRegistrationRequest) (models.WebhookRegistrationResult, error) {
	req.URL = validators.NormalizeWebhookURL(req.URL)

	result, err := s.api.RegisterWebhook(ctx, req)
	if err != nil {
		return models.WebhookRegistrationResult{}, adapter.Normalize(err)
	}

	if result.Message == "" {
		result.Message = app.MsgWebhookRegistered
	}
	logger.FromContext(ctx).Info().Msg("webhook registered")
	return result, nil
}
