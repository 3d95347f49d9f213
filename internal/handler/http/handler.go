package http

import (
	"net/http"

	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/service"
)

type Handler struct {
	services *service.Services
	resolver *environment.Resolver
	proxy    http.Handler
	pages    *pageRenderer

	mode   string
	logger *logger.Logger
}

func NewHandler(services *service.Services, resolver *environment.Resolver, proxy http.Handler, cfg config.App, logger *logger.Logger) (*Handler, error) {
	pages, err := newPageRenderer(cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		resolver: resolver,
		proxy:    proxy,
		pages:    pages,
		mode:     cfg.Environment,
		logger:   logger,
	}, nil
}
