package client

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/service"
	"github.com/MKhiriev/go-notice-web/models"
)

type App struct {
	api      adapter.NoticeAPI
	webhooks service.WebhookService
	out      io.Writer

	logger *logger.Logger
}

// NewApp returns an App printing results to out. webhooks is expected to
// validate its input, so invalid registrations never reach the API.
func NewApp(api adapter.NoticeAPI, webhooks service.WebhookService, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:      api,
		webhooks: webhooks,
		out:      out,
		logger:   logger,
	}
}

// Env prints the public configuration the web front resolves.
func (a *App) Env(ctx context.Context) error {
	return a.run(ctx, "env", func(ctx context.Context) (any, error) {
		return a.api.LoadEnvironment(ctx)
	})
}

// Notices prints the recent legislative notices.
func (a *App) Notices(ctx context.Context) error {
	return a.run(ctx, "notices", func(ctx context.Context) (any, error) {
		return a.api.GetRecentNotices(ctx)
	})
}

// Stats prints webhook and cache statistics.
func (a *App) Stats(ctx context.Context) error {
	return a.run(ctx, "stats", func(ctx context.Context) (any, error) {
		return a.api.GetSystemStats(ctx)
	})
}

// Health prints the webhook health report.
func (a *App) Health(ctx context.Context) error {
	return a.run(ctx, "health", func(ctx context.Context) (any, error) {
		return a.api.GetSystemHealth(ctx)
	})
}

// Register validates req and registers the webhook.
func (a *App) Register(ctx context.Context, req models.WebhookRegistrationRequest) error {
	return a.run(ctx, "register", func(ctx context.Context) (any, error) {
		return a.webhooks.Register(ctx, req)
	})
}

// run calls fn with the App logger attached to ctx and prints its result.
// Failures are returned as *adapter.APIError and nothing is printed.
func (a *App) run(ctx context.Context, command string, fn func(ctx context.Context) (any, error)) error {
	ctx = a.logger.WithContext(ctx)
	a.logger.Debug().Str("command", command).Msg("running command")

	result, err := fn(ctx)
	if err != nil {
		return adapter.Normalize(err)
	}
	return a.print(result)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
