package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/handler"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(addr string) *server {
	cfg := config.Server{
		HTTPAddress:     addr,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}
	return &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop()),
		logger:     logger.Nop(),
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", handlers: nil, cfg: config.Server{HTTPAddress: ":3000"}},
		{name: "no HTTP handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":3000"}},
		{name: "no address", handlers: &handler.Handlers{}, cfg: config.Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestNewHTTPServer_AppliesConfig(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:3000",
		ReadTimeout:     2 * time.Second,
		WriteTimeout:    3 * time.Second,
		ShutdownTimeout: 4 * time.Second,
	}

	h := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, "127.0.0.1:3000", h.server.Addr)
	assert.Equal(t, 2*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 3*time.Second, h.server.WriteTimeout)
	assert.Equal(t, 4*time.Second, h.shutdownTimeout)
}

func TestRun_StopsGracefullyOnCancel(t *testing.T) {
	s := newTestServer("127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRun_ReturnsListenError(t *testing.T) {
	s := newTestServer("no-port-here")

	err := s.run(context.Background())

	require.ErrorIs(t, err, errListenAndServe)
}
