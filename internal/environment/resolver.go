// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

// Diagnostic markers reported instead of secret or missing values.
const (
	MarkerSet    = "[SET]"
	MarkerNotSet = "[NOT SET]"
)

// SourceReport describes what one source contributes. The API URL is shown
// verbatim; the reCAPTCHA key is only reported as set or not set.
type SourceReport struct {
	APIURL       string `json:"api_url"`
	RecaptchaKey string `json:"recaptcha_key"`
}

// Breakdown is the per-source diagnostic view of a resolution.
type Breakdown struct {
	Dynamic SourceReport `json:"dynamic"`
	Static  SourceReport `json:"static"`
	Final   SourceReport `json:"final"`
}

// Resolver binds the runtime and build-time sources. It is safe for
// concurrent use as long as its sources are.
type Resolver struct {
	dynamic Source
	static  Source
}

// NewResolver returns a [Resolver] over the given sources.
func NewResolver(dynamic, static Source) *Resolver {
	return &Resolver{dynamic: dynamic, static: static}
}

// NewDefaultResolver resolves from the process environment and the
// build-time values.
func NewDefaultResolver() *Resolver {
	return NewResolver(OSEnv(), Static())
}

// Resolve computes a fresh [Resolved] from the current source values.
func (r *Resolver) Resolve() Resolved {
	return Resolve(r.dynamic, r.static)
}

// Breakdown reports which source supplies each value.
func (r *Resolver) Breakdown() Breakdown {
	final := r.Resolve()
	return Breakdown{
		Dynamic: report(r.dynamic),
		Static:  report(r.static),
		Final: SourceReport{
			APIURL:       final.APIBaseURL,
			RecaptchaKey: marker(final.RecaptchaSiteKey),
		},
	}
}

func report(src Source) SourceReport {
	apiURL := get(src, KeyAPIBaseURL)
	if apiURL == "" {
		apiURL = MarkerNotSet
	}
	return SourceReport{
		APIURL:       apiURL,
		RecaptchaKey: marker(get(src, KeyRecaptchaSiteKey)),
	}
}

func marker(v string) string {
	if v == "" {
		return MarkerNotSet
	}
	return MarkerSet
}
