package server

// Server defines the lifecycle contract of the web front's transport server.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops,
	// either because of a shutdown signal or because serving failed.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown() error
}
