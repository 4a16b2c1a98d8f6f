package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-admin-gateway/internal/config"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != HealthPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.ListenAddress = ln.Addr().String()
	srv := NewServer(healthHandler(http.StatusOK, "ok"), cfg, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		return Probe(context.Background(), "http://"+ln.Addr().String(), time.Second) == nil
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	assert.Error(t, Probe(context.Background(), "http://"+ln.Addr().String(), 200*time.Millisecond))
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Default()
	cfg.ListenAddress = ln.Addr().String()

	err = NewServer(healthHandler(http.StatusOK, "ok"), cfg, logger.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, ErrListen)
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "healthy", status: http.StatusOK, body: "ok"},
		{name: "wrong body", status: http.StatusOK, body: "starting", wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: "ok", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(healthHandler(tt.status, tt.body))
			defer ts.Close()

			err := Probe(context.Background(), ts.URL, time.Second)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnhealthy)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProbe_Unreachable(t *testing.T) {
	ts := httptest.NewServer(healthHandler(http.StatusOK, "ok"))
	url := ts.URL
	ts.Close()

	assert.ErrorIs(t, Probe(context.Background(), url, 200*time.Millisecond), ErrUnhealthy)
}
