package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/app"
	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commandRun holds the outcome of one noticectl invocation.
type commandRun struct {
	out     bytes.Buffer
	cfg     *config.CLIConfig
	builds  int
	execErr error
}

func execute(t *testing.T, api *fakeNoticeAPI, args ...string) *commandRun {
	t.Helper()
	clearCLIEnv(t)

	run := &commandRun{}
	cmd := NewRootCommand(func(cfg *config.CLIConfig, out io.Writer) (*App, error) {
		run.cfg = cfg
		run.builds++
		return newTestApp(api, out), nil
	})
	cmd.SetOut(&run.out)
	cmd.SetErr(io.Discard)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	run.execErr = cmd.ExecuteContext(context.Background())
	return run
}

// clearCLIEnv unsets the variables GetCLIConfig reads for the duration of
// the test.
func clearCLIEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CLIENT_BASE_URL", "CLIENT_REQUEST_TIMEOUT", "APP_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestCommands_Read(t *testing.T) {
	efficiency := 0.9
	api := &fakeNoticeAPI{
		notices: []models.Notice{{Num: 1, Subject: "도로교통법 일부개정법률안"}},
		stats:   models.SystemStats{Webhooks: models.WebhookStats{Total: 3, Active: 2, Inactive: 1, Efficiency: &efficiency}},
		health:  models.SystemHealth{Efficiency: 0.9, Status: models.HealthStatusHealthy},
		env:     environment.Resolved{APIBaseURL: "https://api.example.com/api", RecaptchaSiteKey: "key"},
	}

	tests := []struct {
		command string
		want    any
		decoded func() any
	}{
		{command: "env", want: &api.env, decoded: func() any { return new(environment.Resolved) }},
		{command: "notices", want: &api.notices, decoded: func() any { return new([]models.Notice) }},
		{command: "stats", want: &api.stats, decoded: func() any { return new(models.SystemStats) }},
		{command: "health", want: &api.health, decoded: func() any { return new(models.SystemHealth) }},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			run := execute(t, api, tt.command)
			require.NoError(t, run.execErr)

			got := tt.decoded()
			require.NoError(t, json.Unmarshal(run.out.Bytes(), got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommands_GlobalFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantURL   string
		wantTO    time.Duration
		wantLevel string
	}{
		{
			name:      "defaults",
			args:      []string{"stats"},
			wantURL:   config.DefaultCLIBaseURL,
			wantTO:    10 * time.Second,
			wantLevel: "info",
		},
		{
			name:      "before the command",
			args:      []string{"--api", "http://front:3000/api", "--timeout", "3s", "--log-level", "debug", "stats"},
			wantURL:   "http://front:3000/api",
			wantTO:    3 * time.Second,
			wantLevel: "debug",
		},
		{
			name:      "after the command",
			args:      []string{"health", "--api=http://front:3000/api"},
			wantURL:   "http://front:3000/api",
			wantTO:    10 * time.Second,
			wantLevel: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := execute(t, &fakeNoticeAPI{}, tt.args...)
			require.NoError(t, run.execErr)
			require.NotNil(t, run.cfg)

			assert.Equal(t, tt.wantURL, run.cfg.Client.BaseURL)
			assert.Equal(t, tt.wantTO, run.cfg.Client.RequestTimeout)
			assert.Equal(t, tt.wantLevel, run.cfg.LogLevel)
		})
	}
}

func TestCommands_Register(t *testing.T) {
	api := &fakeNoticeAPI{}

	run := execute(t, api, "register", "--url", "  "+testWebhookURL+"  ", "--token", "captcha")

	require.NoError(t, run.execErr)
	assert.Equal(t, 1, api.registerCalls)
	assert.Equal(t, testWebhookURL, api.registered.URL)
	assert.Equal(t, "captcha", api.registered.RecaptchaToken)

	var got models.WebhookRegistrationResult
	require.NoError(t, json.Unmarshal(run.out.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, app.MsgWebhookRegistered, got.Message)
}

func TestCommands_RegisterValidatesLocally(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "empty URL", args: []string{"register", "--url=", "--token", "captcha"}, wantMsg: app.MsgWebhookURLRequired},
		{name: "plain http", args: []string{"register", "--url", "http://discord.com/api/webhooks/1/2", "--token", "captcha"}, wantMsg: app.MsgWebhookURLNotHTTPS},
		{name: "empty token", args: []string{"register", "--url", testWebhookURL, "--token="}, wantMsg: app.MsgRecaptchaTokenRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeNoticeAPI{}

			run := execute(t, api, tt.args...)

			var apiErr *adapter.APIError
			require.ErrorAs(t, run.execErr, &apiErr)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Zero(t, api.registerCalls, "invalid input must not reach the API")
			assert.Empty(t, run.out.String())
		})
	}
}

func TestCommands_UsageErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantIs      error
		wantMessage string
	}{
		{name: "no command", args: nil, wantIs: ErrNoCommand},
		{name: "unknown command", args: []string{"delete-everything"}, wantIs: ErrUnknownCommand, wantMessage: "delete-everything"},
		{name: "unknown flag", args: []string{"stats", "--grpc"}, wantMessage: "--grpc"},
		{name: "bad duration", args: []string{"--timeout", "soon", "stats"}, wantMessage: "soon"},
		{name: "extra argument", args: []string{"stats", "today"}, wantMessage: "today"},
		{name: "missing url", args: []string{"register", "--token", "captcha"}, wantMessage: `"url"`},
		{name: "missing token", args: []string{"register", "--url", testWebhookURL}, wantMessage: `"token"`},
		{name: "invalid api url", args: []string{"--api", "not a url", "stats"}, wantIs: config.ErrInvalidClientConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeNoticeAPI{}

			run := execute(t, api, tt.args...)

			var usageErr *UsageError
			require.ErrorAs(t, run.execErr, &usageErr)
			if tt.wantIs != nil {
				assert.ErrorIs(t, run.execErr, tt.wantIs)
			}
			if tt.wantMessage != "" {
				assert.Contains(t, run.execErr.Error(), tt.wantMessage)
			}
			assert.Zero(t, run.builds, "no API client is built for a bad command line")
			assert.Zero(t, api.registerCalls)
		})
	}
}

func TestCommands_Help(t *testing.T) {
	run := execute(t, &fakeNoticeAPI{}, "register", "--help")

	require.NoError(t, run.execErr)
	assert.Contains(t, run.out.String(), "--url")
	assert.Contains(t, run.out.String(), "--token")
	assert.Contains(t, run.out.String(), "--api", "global flags are listed too")
	assert.Zero(t, run.builds)
}
