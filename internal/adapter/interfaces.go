// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client used by pages and the CLI to talk to
// the notice backend through the web front's /api proxy.
//
// The primary abstraction is [NoticeAPI], which decouples the service layer
// from the transport. The package ships an HTTP implementation built on
// resty ([NewHTTPNoticeAPI]).
//
// Every failure leaves a public operation as an [*APIError] produced by
// [Normalize], so callers always get a user-facing message and, when the
// backend answered, its HTTP status.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/models"
)

// NoticeAPI defines the operations the web front needs from the backend.
type NoticeAPI interface {
	// GetRecentNotices fetches the most recent legislative notices.
	GetRecentNotices(ctx context.Context) ([]models.Notice, error)

	// GetSystemStats fetches webhook and cache statistics.
	GetSystemStats(ctx context.Context) (models.SystemStats, error)

	// GetSystemHealth fetches the webhook health summary.
	GetSystemHealth(ctx context.Context) (models.SystemHealth, error)

	// RegisterWebhook registers a Discord webhook. A 409 is reported as an
	// already registered URL and a 429 as too many webhooks.
	RegisterWebhook(ctx context.Context, req models.WebhookRegistrationRequest) (models.WebhookRegistrationResult, error)

	// LoadEnvironment fetches the public runtime configuration from
	// /api/env. On any failure it returns the defaults together with the
	// error.
	LoadEnvironment(ctx context.Context) (environment.Resolved, error)
}
