package service

import (
	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/models"
)

type Services struct {
	PageService    PageService
	WebhookService WebhookService
	AppInfoService AppInfoService
}

func NewServices(api adapter.NoticeAPI, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		PageService:    NewPageService(api, logger),
		WebhookService: NewWebhookValidationService().Wrap(NewWebhookService(api, logger)),
		AppInfoService: appInfoService,
	}, nil
}
