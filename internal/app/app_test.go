package app

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

func testConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.GRPCAddr = freeAddr(t)
	cfg.MetricsAddr = freeAddr(t)
	cfg.OutboxPollInterval = 10 * time.Millisecond
	cfg.IdempotencyCleanupInterval = 10 * time.Millisecond
	return cfg
}

func TestRun_ServesAndStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg) }()

	conn, err := grpc.NewClient(cfg.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	health := healthpb.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		callCtx, callCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer callCancel()
		resp, err := health.Check(callCtx, &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 3*time.Second, 20*time.Millisecond)

	client := restockv1.NewOrderServiceClient(conn)
	created, err := client.CreateTable(context.Background(), &restockv1.CreateTableRequest{Name: "T1", Quantity: 4, State: "available"})
	require.NoError(t, err)
	require.NotZero(t, created.Id)

	cancel()
	select {
	case err := <-done:
		require.True(t, errors.Is(err, context.Canceled), "unexpected error: %v", err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StorageDriver = "bolt"
	err := Run(context.Background(), cfg)
	require.ErrorContains(t, err, "invalid config")
}

func TestRun_ListenError(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := testConfig(t)
	cfg.GRPCAddr = lis.Addr().String()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = Run(ctx, cfg)
	require.ErrorContains(t, err, "listen")
}
