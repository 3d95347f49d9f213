package config

import (
	"net"
	"time"
)

const (
	DefaultServerAddress   = ":3000"
	DefaultBackendURL      = "http://localhost:3001/api"
	DefaultProxyTimeout    = 30 * time.Second
	DefaultRequestTimeout  = 15 * time.Second
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultEnvFile         = ".env"
	DefaultLogLevel        = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: ModeProduction,
			LogLevel:    DefaultLogLevel,
			EnvFile:     DefaultEnvFile,
		},
		Server: Server{
			HTTPAddress:     DefaultServerAddress,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Proxy: Proxy{
			BackendURL: DefaultBackendURL,
			Timeout:    DefaultProxyTimeout,
		},
		Client: Client{
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// selfAPIURL returns the /api root of a server listening on addr. Wildcard
// and empty hosts are reached through localhost.
func selfAPIURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return ""
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}

	return "http://" + net.JoinHostPort(host, port) + "/api"
}
