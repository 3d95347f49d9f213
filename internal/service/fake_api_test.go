package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/models"
)

// fakeNoticeAPI is a hand-written adapter.NoticeAPI for service tests.
type fakeNoticeAPI struct {
	mu sync.Mutex

	notices    []models.Notice
	noticesErr error
	stats      models.SystemStats
	statsErr   error

	registerResult models.WebhookRegistrationResult
	registerErr    error
	registered     []models.WebhookRegistrationRequest
}

func (f *fakeNoticeAPI) GetRecentNotices(ctx context.Context) ([]models.Notice, error) {
	return f.notices, f.noticesErr
}

func (f *fakeNoticeAPI) GetSystemStats(ctx context.Context) (models.SystemStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeNoticeAPI) GetSystemHealth(ctx context.Context) (models.SystemHealth, error) {
	return models.SystemHealth{}, nil
}

func (f *fakeNoticeAPI) RegisterWebhook(ctx context.Context, req models.WebhookRegistrationRequest) (models.WebhookRegistrationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, req)
	return f.registerResult, f.registerErr
}

func (f *fakeNoticeAPI) LoadEnvironment(ctx context.Context) (environment.Resolved, error) {
	return environment.Defaults(), nil
}
