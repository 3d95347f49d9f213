// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the page renderer. Callers can match against them with
// [errors.Is].
var (
	// ErrParsingTemplate is returned by NewHandler when an embedded page
	// template cannot be parsed.
	ErrParsingTemplate = errors.New("error parsing page template")

	// ErrRenderingTemplate is returned when executing a parsed page fails.
	ErrRenderingTemplate = errors.New("error rendering page template")

	// ErrUnknownPage is returned when a handler asks for a page that was
	// never parsed.
	ErrUnknownPage = errors.New("unknown page")
)
