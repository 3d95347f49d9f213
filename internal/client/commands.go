// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/models"
	"github.com/spf13/cobra"
)

// action is one subcommand's work on a ready App.
type action func(a *App, ctx context.Context) error

// Factory builds the App for one invocation from the resolved global
// configuration. Results must be printed to out.
type Factory func(cfg *config.CLIConfig, out io.Writer) (*App, error)

// NewRootCommand returns the noticectl command tree. The App is built by
// factory only when a subcommand actually runs.
func NewRootCommand(factory Factory) *cobra.Command {
	var flags config.CLIConfig

	rootCmd := &cobra.Command{
		Use:   "noticectl",
		Short: "noticectl talks to the legislative-notice web front API",
		Long: `noticectl runs one command against the web front's /api and prints the
result as JSON.

  noticectl env                                  # resolved public configuration
  noticectl notices                              # recent legislative notices
  noticectl stats                                # webhook and cache statistics
  noticectl health                               # webhook health report
  noticectl register --url <webhook> --token <t> # register a Discord webhook`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(fmt.Errorf("%w %q", ErrUnknownCommand, args[0]))
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return usageError(ErrNoCommand)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.Client.BaseURL, "api", "", "API base URL (default "+config.DefaultCLIBaseURL+")")
	pf.DurationVar(&flags.Client.RequestTimeout, "timeout", 0, "Request timeout, e.g. 10s (default 10s)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level (default info)")

	withApp := func(fn action) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetCLIConfig(flags)
			if err != nil {
				return usageError(err)
			}
			a, err := factory(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return fn(a, cmd.Context())
		}
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "env",
			Short: "Show the resolved public configuration",
			Args:  noArgs,
			RunE:  withApp((*App).Env),
		},
		&cobra.Command{
			Use:   "notices",
			Short: "List recent legislative notices",
			Args:  noArgs,
			RunE:  withApp((*App).Notices),
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show webhook and cache statistics",
			Args:  noArgs,
			RunE:  withApp((*App).Stats),
		},
		&cobra.Command{
			Use:   "health",
			Short: "Show the webhook health report",
			Args:  noArgs,
			RunE:  withApp((*App).Health),
		},
		newRegisterCommand(withApp),
	)

	return rootCmd
}

func newRegisterCommand(withApp func(action) func(*cobra.Command, []string) error) *cobra.Command {
	var req models.WebhookRegistrationRequest

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a Discord webhook",
		Long: `Validates the Discord webhook URL locally, normalizes it and submits it
together with a reCAPTCHA response token. Invalid URLs never reach the API.`,
		Args: noArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmd.ValidateRequiredFlags(); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: withApp(func(a *App, ctx context.Context) error {
			return a.Register(ctx, req)
		}),
	}

	registerCmd.Flags().StringVar(&req.URL, "url", "", "Discord webhook URL")
	registerCmd.Flags().StringVar(&req.RecaptchaToken, "token", "", "reCAPTCHA response token")
	_ = registerCmd.MarkFlagRequired("url")
	_ = registerCmd.MarkFlagRequired("token")

	return registerCmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(err)
	}
	return nil
}
