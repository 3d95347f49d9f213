package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/progress"
	"github.com/MKhiriev/go-notice-web/internal/utils"
	"github.com/MKhiriev/go-notice-web/models"
)

var errInvalidEnvResponse = errors.New("invalid environment config response")

type httpNoticeAPI struct {
	client  *utils.HTTPClient
	tracker *progress.Tracker

	logger *logger.Logger
}

// NewHTTPNoticeAPI constructs an HTTP implementation of [NoticeAPI] rooted at
// cfg.BaseURL, normally the web front's own /api prefix.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPNoticeAPI(cfg config.Client, log *logger.Logger) (NoticeAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	tracker := progress.NewTracker(
		func() { log.Debug().Msg("api requests in flight") },
		func() { log.Debug().Msg("api requests settled") },
	)

	return &httpNoticeAPI{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout, log),
		tracker: tracker,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetRecentNotices implements [NoticeAPI] via GET /notices/recent.
func (h *httpNoticeAPI) GetRecentNotices(ctx context.Context) ([]models.Notice, error) {
	notices, err := doRequest[[]models.Notice](ctx, h, http.MethodGet, "/notices/recent", nil)
	if err != nil {
		h.logger.Err(err).Msg("failed to load recent notices")
		return nil, Normalize(err)
	}
	return notices, nil
}

// GetSystemStats implements [NoticeAPI] via GET /stats.
func (h *httpNoticeAPI) GetSystemStats(ctx context.Context) (models.SystemStats, error) {
	stats, err := doRequest[models.SystemStats](ctx, h, http.MethodGet, "/stats", nil)
	if err != nil {
		h.logger.Err(err).Msg("failed to load system stats")
		return models.SystemStats{}, Normalize(err)
	}
	return stats, nil
}

// GetSystemHealth implements [NoticeAPI] via GET /webhooks/system-health.
func (h *httpNoticeAPI) GetSystemHealth(ctx context.Context) (models.SystemHealth, error) {
	health, err := doRequest[models.SystemHealth](ctx, h, http.MethodGet, "/webhooks/system-health", nil)
	if err != nil {
		h.logger.Err(err).Msg("failed to load system health")
		return models.SystemHealth{}, Normalize(err)
	}
	return health, nil
}

// RegisterWebhook implements [NoticeAPI] via POST /webhooks.
func (h *httpNoticeAPI) RegisterWebhook(ctx context.Context, req models.WebhookRegistrationRequest) (models.WebhookRegistrationResult, error) {
	result, err := doRequest[models.WebhookRegistrationResult](ctx, h, http.MethodPost, "/webhooks", req)
	if err != nil {
		h.logger.Err(err).Msg("failed to register webhook")
		return models.WebhookRegistrationResult{}, registrationError(err)
	}
	return result, nil
}

// envResponse is the body of GET /api/env. It is served by this module
// rather than the backend, so it has no data envelope.
type envResponse struct {
	Success     bool                  `json:"success"`
	Environment *environment.Resolved `json:"environment"`
}

// LoadEnvironment implements [NoticeAPI] via GET /env.
func (h *httpNoticeAPI) LoadEnvironment(ctx context.Context) (environment.Resolved, error) {
	env, err := h.loadEnvironment(ctx)
	if err != nil {
		h.logger.Err(err).Msg("failed to load environment config")
		return environment.Defaults(), Normalize(err)
	}
	return env, nil
}

func (h *httpNoticeAPI) loadEnvironment(ctx context.Context) (environment.Resolved, error) {
	resp, err := h.send(ctx, http.MethodGet, "/env", nil, withHeader("Cache-Control", "no-cache"))
	if err != nil {
		return environment.Resolved{}, err
	}
	if !resp.IsSuccess() {
		return environment.Resolved{}, &StatusError{Status: resp.StatusCode()}
	}

	var body envResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return environment.Resolved{}, &DecodeError{Status: resp.StatusCode(), Err: err}
	}
	if !body.Success || body.Environment == nil {
		return environment.Resolved{}, &DecodeError{Status: resp.StatusCode(), Err: errInvalidEnvResponse}
	}

	return *body.Environment, nil
}
