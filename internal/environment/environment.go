// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import "strings"

// Keys of the public configuration values, shared by every source and used
// as JSON field names on the wire.
const (
	KeyAPIBaseURL       = "PUBLIC_API_BASE_URL"
	KeyRecaptchaSiteKey = "PUBLIC_RECAPTCHA_SITE_KEY"
)

// Hard-coded fallbacks used when no source provides a value.
const (
	DefaultAPIBaseURL       = "http://localhost:3001/api"
	DefaultRecaptchaSiteKey = ""
)

// Resolved is the effective public configuration for one request.
type Resolved struct {
	APIBaseURL       string `json:"PUBLIC_API_BASE_URL"`
	RecaptchaSiteKey string `json:"PUBLIC_RECAPTCHA_SITE_KEY"`
}

// Defaults returns the configuration used when every source is empty.
func Defaults() Resolved {
	return Resolved{
		APIBaseURL:       DefaultAPIBaseURL,
		RecaptchaSiteKey: DefaultRecaptchaSiteKey,
	}
}

// Resolve merges dynamic and static into a [Resolved], taking per field the
// first non-blank value in the order dynamic, static, default.
// A nil source is treated as empty.
func Resolve(dynamic, static Source) Resolved {
	return Resolved{
		APIBaseURL:       firstNonEmpty(get(dynamic, KeyAPIBaseURL), get(static, KeyAPIBaseURL), DefaultAPIBaseURL),
		RecaptchaSiteKey: firstNonEmpty(get(dynamic, KeyRecaptchaSiteKey), get(static, KeyRecaptchaSiteKey), DefaultRecaptchaSiteKey),
	}
}

func get(src Source, key string) string {
	if src == nil {
		return ""
	}
	return strings.TrimSpace(src.Get(key))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
