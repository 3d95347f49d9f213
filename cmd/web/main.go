// Command web serves the legislative-notice web front: server-rendered
// pages, the public configuration endpoints and the /api proxy.
//
// Build information and the static public configuration are baked in with
// -ldflags, for example:
//
//	go build -ldflags "-X main.buildVersion=v1.0.0 \
//	  -X github.com/MKhiriev/go-notice-web/internal/environment.staticAPIBaseURL=https://api.example.com/api" ./cmd/web
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/internal/handler"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/proxy"
	"github.com/MKhiriev/go-notice-web/internal/server"
	"github.com/MKhiriev/go-notice-web/internal/service"
	"github.com/MKhiriev/go-notice-web/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewLogger("web", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	api, err := adapter.NewHTTPNoticeAPI(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	services, err := service.NewServices(api, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(
		services,
		environment.NewDefaultResolver(),
		proxy.NewForwarder(cfg.Proxy, log),
		*cfg,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
