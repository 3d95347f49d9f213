// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// envParsers override the caarlos0/env parsers for the scalar types the
// configuration uses. Values copied from dotenv files and deployment
// manifests often carry stray blanks, so strings are trimmed. Durations
// accept Go syntax ("30s") or a bare integer read as milliseconds ("30000").
var envParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(""): func(v string) (any, error) {
		return strings.TrimSpace(v), nil
	},
	reflect.TypeOf(time.Duration(0)): parseEnvDuration,
}

func parseEnvDuration(v string) (any, error) {
	v = strings.TrimSpace(v)
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		if ms < 0 {
			return nil, fmt.Errorf("negative duration %q", v)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(v)
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig], [CLIConfig] and their nested types.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{FuncMap: envParsers})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
