package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCLIConfig(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		flags     CLIConfig
		wantURL   string
		wantTO    time.Duration
		wantLevel string
	}{
		{
			name:      "defaults",
			wantURL:   DefaultCLIBaseURL,
			wantTO:    10 * time.Second,
			wantLevel: "info",
		},
		{
			name: "flags",
			flags: CLIConfig{
				Client:   Client{BaseURL: "http://front:3000/api", RequestTimeout: 3 * time.Second},
				LogLevel: "debug",
			},
			wantURL:   "http://front:3000/api",
			wantTO:    3 * time.Second,
			wantLevel: "debug",
		},
		{
			name:      "env beats flags",
			env:       map[string]string{"CLIENT_BASE_URL": "http://env/api"},
			flags:     CLIConfig{Client: Client{BaseURL: "http://flag/api"}},
			wantURL:   "http://env/api",
			wantTO:    10 * time.Second,
			wantLevel: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)

			cfg, err := GetCLIConfig(tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, cfg.Client.BaseURL)
			assert.Equal(t, tt.wantTO, cfg.Client.RequestTimeout)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel)
		})
	}
}

func TestGetCLIConfig_InvalidURL(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetCLIConfig(CLIConfig{Client: Client{BaseURL: "not a url"}})
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidClientConfigs)
}
