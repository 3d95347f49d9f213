package utils

import (
	"time"

	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3001/api", 30*time.Second, log)
//	resp, err := client.R().Get("/stats")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty client with its own connection
// pool. baseURL may be empty when requests use absolute URLs; a zero timeout
// disables the client-side deadline. Resty's internal warnings are routed
// to log.
func NewHTTPClient(baseURL string, timeout time.Duration, log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetLogger(restyLogger{log: log}).
		SetTimeout(timeout)

	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}

	return &HTTPClient{Client: client}
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
