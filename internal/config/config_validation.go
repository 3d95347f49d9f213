// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case ModeDevelopment, ModeProduction, ModeTest:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if cfg.Server.HTTPAddress == "" ||
		cfg.Server.ReadTimeout < 0 ||
		cfg.Server.WriteTimeout < 0 ||
		cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if !isHTTPURL(cfg.Proxy.BackendURL) || cfg.Proxy.Timeout < 0 {
		return fmt.Errorf("%w: backend url %q", ErrInvalidProxyConfigs, cfg.Proxy.BackendURL)
	}

	return cfg.Client.validate()
}

func (c Client) validate() error {
	if !isHTTPURL(c.BaseURL) || c.RequestTimeout < 0 {
		return fmt.Errorf("%w: base url %q", ErrInvalidClientConfigs, c.BaseURL)
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
