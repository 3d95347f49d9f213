// Package server runs the web front's HTTP server.
//
// It owns the server lifecycle: startup with the configured read and write
// timeouts, signal handling, and graceful shutdown bounded by the configured
// shutdown timeout.
package server
