package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// DefaultCLIBaseURL is the API root of a locally running web front.
const DefaultCLIBaseURL = "http://localhost:3000/api"

// CLIConfig holds the noticectl settings.
type CLIConfig struct {
	// Client is the API client configuration. It is read from the same
	// CLIENT_* variables as the web front.
	Client Client `envPrefix:"CLIENT_"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"APP_LOG_LEVEL"`
}

// GetCLIConfig builds the CLI configuration from environment variables,
// the global flag values in flags and the defaults, in that priority order.
func GetCLIConfig(flags CLIConfig) (*CLIConfig, error) {
	var envCfg CLIConfig
	if err := parseEnv(&envCfg); err != nil {
		return nil, err
	}

	defaults := CLIConfig{
		Client: Client{
			BaseURL:        DefaultCLIBaseURL,
			RequestTimeout: 10 * time.Second,
		},
		LogLevel: "info",
	}

	cfg := new(CLIConfig)
	for _, layer := range []*CLIConfig{&envCfg, &flags, &defaults} {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.Client.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
