// Package http implements the HTTP transport layer of the notice web front.
//
// It wires the chi router: the public configuration endpoints (/api/env and
// /api/health), the /api/* proxy to the backend, and the server-rendered
// pages. Cross-cutting concerns such as request tracing, access logging,
// response compression and injection of the resolved configuration into
// rendered HTML are handled by middleware in this package before requests
// reach the service layer.
package http
