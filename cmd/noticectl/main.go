// Command noticectl talks to the web front's API from a terminal.
//
// Usage:
//
//	noticectl [--api URL] [--timeout 10s] [--log-level info] <command> [flags]
//
// Commands:
//
//	env                             resolved public configuration
//	notices                         recent legislative notices
//	stats                           webhook and cache statistics
//	health                          webhook health report
//	register --url URL --token T    register a Discord webhook
//
// Exit status is 0 on success, 1 when the command fails and 2 on a usage
// error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/client"
	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, err := client.NewRootCommand(newApp).ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "noticectl: %v\n", err)

	var usageErr *client.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(os.Stderr, cmd.UsageString())
		return 2
	}
	return 1
}

func newApp(cfg *config.CLIConfig, out io.Writer) (*client.App, error) {
	log := logger.NewCLILogger("noticectl", cfg.LogLevel, os.Stderr)

	api, err := adapter.NewHTTPNoticeAPI(cfg.Client, log)
	if err != nil {
		return nil, err
	}

	webhooks := service.NewWebhookValidationService().Wrap(service.NewWebhookService(api, log))
	return client.NewApp(api, webhooks, out, log), nil
}
