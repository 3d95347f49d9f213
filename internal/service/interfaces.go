package service

import (
	"context"

	"github.com/MKhiriev/go-notice-web/models"
)

// PageService loads the data rendered by the HTML pages. Its methods never
// fail: backend errors degrade to empty data plus a user-facing message.
type PageService interface {
	LoadHome(ctx context.Context) HomeData
	LoadNotices(ctx context.Context) NoticesData
}

// WebhookService registers Discord webhooks with the backend.
type WebhookService interface {
	// Register validates and normalizes req.URL before sending it. Every
	// error it returns is an *adapter.APIError.
	Register(ctx context.Context, req models.WebhookRegistrationRequest) (models.WebhookRegistrationResult, error)
}

// AppInfoService exposes the running application's mode and build.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) AppInfo
}

// WebhookServiceWrapper defines middleware composition for WebhookService.
// Implementations wrap an existing WebhookService to add behavior such as
// validation.
type WebhookServiceWrapper interface {
	Wrap(WebhookService) WebhookService // returns a decorated WebhookService applying additional behavior
}
