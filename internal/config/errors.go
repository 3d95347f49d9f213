package config

import "errors"

// Validation errors returned by validate when a configuration group is
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown application mode.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidProxyConfigs indicates a backend URL that is not an
	// absolute http(s) URL, or a negative timeout.
	ErrInvalidProxyConfigs = errors.New("invalid proxy configuration")
	// ErrInvalidClientConfigs indicates an unusable API client base URL or
	// a negative timeout.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
