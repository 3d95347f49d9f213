package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/internal/handler/http"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, resolver *environment.Resolver, proxy nethttp.Handler, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, resolver, proxy, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
