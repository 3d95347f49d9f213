// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Application modes accepted in App.Environment.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeTest        = "test"
)

// StructuredConfig is the top-level configuration container for the web
// front. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// The public values handed to the browser (PUBLIC_API_BASE_URL,
// PUBLIC_RECAPTCHA_SITE_KEY) are not part of this struct. They are read on
// every request by the environment resolver.
type StructuredConfig struct {
	// App holds the application mode and logging settings.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Proxy holds the backend location used by the /api/* forwarder.
	Proxy Proxy

	// Client holds the settings of the API client used by pages.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Environment is the application mode: development, production or test.
	// It is reported as node_env by /api/health and switches pretty-printed
	// HTML and louder bootstrap diagnostics on in development.
	// Env: APP_ENV
	Environment string `env:"ENV"`

	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// EnvFile is the dotenv file loaded into the process environment before
	// the environment is parsed. A missing file is ignored.
	// Env: APP_ENV_FILE
	EnvFile string `env:"ENV_FILE"`
}

// IsDevelopment reports whether the application runs in development mode.
func (a App) IsDevelopment() bool {
	return a.Environment == ModeDevelopment
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "[host]:port" format (e.g. ":3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadTimeout bounds reading an inbound request including its body.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing the response. It must exceed the proxy
	// timeout so that a 504 can still be delivered.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Proxy holds the settings of the /api/* forwarder.
type Proxy struct {
	// BackendURL is the base URL every proxied path is appended to.
	// Env: API_BASE_URL
	BackendURL string `env:"API_BASE_URL"`

	// Timeout bounds one backend round trip. Zero disables it.
	// Env: PROXY_TIMEOUT
	Timeout time.Duration `env:"PROXY_TIMEOUT"`
}

// Client holds the settings of the API client used by pages and the CLI.
type Client struct {
	// BaseURL is the API root the client talks to. For the web front it
	// defaults to the front's own /api prefix, derived from
	// Server.HTTPAddress.
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds one client request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the web front
// configuration. args are the command-line arguments without the program
// name. Sources are merged in the following priority order (the first
// source that sets a field wins):
//  1. Environment variables (after the dotenv file is loaded)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withDotenv().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
