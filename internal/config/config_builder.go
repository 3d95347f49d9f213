package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers. Each layer is stored in its
// own slot so build can merge them in priority order no matter in which
// order the with* methods run.
type configBuilder struct {
	env      *StructuredConfig
	flags    *StructuredConfig
	json     *StructuredConfig
	defaults *StructuredConfig

	err error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// layers returns the collected configs, highest priority first.
func (b *configBuilder) layers() []*StructuredConfig {
	configs := make([]*StructuredConfig, 0, 4)
	for _, cfg := range []*StructuredConfig{b.env, b.flags, b.json, b.defaults} {
		if cfg != nil {
			configs = append(configs, cfg)
		}
	}
	return configs
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.layers() {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if config.Client.BaseURL == "" {
		config.Client.BaseURL = selfAPIURL(config.Server.HTTPAddress)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(flag.NewFlagSet("web", flag.ContinueOnError), args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	return b
}

// withDotenv loads the dotenv file named by the flags, APP_ENV_FILE or the
// default, in that order. It must run before withEnv.
func (b *configBuilder) withDotenv() *configBuilder {
	path := DefaultEnvFile
	if fromEnv := os.Getenv("APP_ENV_FILE"); fromEnv != "" {
		path = fromEnv
	}
	if b.flags != nil && b.flags.App.EnvFile != "" {
		path = b.flags.App.EnvFile
	}

	if err := loadDotenv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.json = jsonCfg
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}
