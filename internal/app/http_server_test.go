package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	healthcheck "github.com/vladislavdragonenkov/restock/internal/health"
	"github.com/vladislavdragonenkov/restock/internal/storage/memory"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func waitHTTP(t *testing.T, url string) *http.Response {
	t.Helper()
	var resp *http.Response
	require.Eventually(t, func() bool {
		r, err := http.Get(url)
		if err != nil {
			return false
		}
		resp = r
		return true
	}, 2*time.Second, 20*time.Millisecond)
	return resp
}

func TestStartMetricsServer_Endpoints(t *testing.T) {
	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := healthcheck.NewHandler("test")
	handler.RegisterChecker("outbox", healthcheck.NewOutboxChecker(memory.NewOutboxRepository(), time.Minute))
	srv := startMetricsServer(ctx, addr, testLogger(), handler)
	require.NotNil(t, srv)

	resp := waitHTTP(t, "http://"+addr+"/livez")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body)

	for _, path := range []string{"/metrics", "/healthz", "/readyz"} {
		resp, err := http.Get("http://" + addr + path)
		require.NoError(t, err, path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.NoError(t, resp.Body.Close())
	}
}

func TestStartMetricsServer_StopsOnCancel(t *testing.T) {
	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())

	startMetricsServer(ctx, addr, testLogger(), healthcheck.NewHandler("test"))
	resp := waitHTTP(t, "http://"+addr+"/livez")
	require.NoError(t, resp.Body.Close())

	cancel()
	require.Eventually(t, func() bool {
		r, err := http.Get("http://" + addr + "/livez")
		if err == nil {
			_ = r.Body.Close()
			return false
		}
		return true
	}, 2*time.Second, 20*time.Millisecond)
}

func TestShutdownHTTP_NilServer(t *testing.T) {
	require.NotPanics(t, func() { shutdownHTTP(nil, testLogger()) })
}
