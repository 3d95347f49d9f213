// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package proxy forwards /api/* requests from the web front to the notice
// backend.
//
// The forwarder is a thin pass-through: the backend response (status,
// headers and body) is streamed back unmodified. Transport failures become
// a plain-text 502 Bad Gateway and outbound timeouts a 504 Gateway Timeout;
// the underlying error is only logged.
package proxy
