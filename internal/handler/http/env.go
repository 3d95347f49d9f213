// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/utils"
)

// envDebug lists where each public value came from. The reCAPTCHA key is
// only ever reported as a set/unset marker.
type envDebug struct {
	Dynamic environment.SourceReport `json:"dynamic"`
	Static  environment.SourceReport `json:"static"`
}

// envResponse is the body of GET /api/env.
type envResponse struct {
	Success     bool                 `json:"success"`
	Environment environment.Resolved `json:"environment"`
	Debug       envDebug             `json:"debug"`
}

// healthEnvironment is the environment section of GET /api/health.
type healthEnvironment struct {
	NodeEnv string                   `json:"node_env"`
	Dynamic environment.SourceReport `json:"dynamic"`
	Static  environment.SourceReport `json:"static"`
	Final   environment.SourceReport `json:"final"`
}

// healthResponse is the body of GET /api/health.
type healthResponse struct {
	Status      string            `json:"status"`
	Timestamp   string            `json:"timestamp"`
	Environment healthEnvironment `json:"environment"`
}

// getEnv returns the public configuration resolved for this request together
// with a per-source breakdown. The values are read from the process
// environment on every call, so a redeploy with new variables is visible
// without a rebuild. It never fails.
func (h *Handler) getEnv(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	breakdown := h.resolver.Breakdown()
	resp := envResponse{
		Success:     true,
		Environment: h.resolver.Resolve(),
		Debug: envDebug{
			Dynamic: breakdown.Dynamic,
			Static:  breakdown.Static,
		},
	}

	if _, err := utils.WriteNoCacheJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write env response")
	}
}

// getHealth reports liveness and the same source breakdown as getEnv.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	breakdown := h.resolver.Breakdown()
	resp := healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Environment: healthEnvironment{
			NodeEnv: h.mode,
			Dynamic: breakdown.Dynamic,
			Static:  breakdown.Static,
			Final:   breakdown.Final,
		},
	}

	if _, err := utils.WriteNoCacheJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write health response")
	}
}
