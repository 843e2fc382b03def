package grpcserver

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

type flakyPinger struct {
	fail atomic.Bool
}

func (p *flakyPinger) PingContext(context.Context) error {
	if p.fail.Load() {
		return errors.New("database is locked")
	}
	return nil
}

func startServer(t *testing.T, s *Server) healthpb.HealthClient {
	lis := bufconn.Listen(1024 * 1024)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func servingStatus(client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN
	}
	return resp.GetStatus()
}

func TestHealthStartsNotServing(t *testing.T) {
	client := startServer(t, New("bikeshop"))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(client, ""))
}

func TestWatchDependencyFlipsStatus(t *testing.T) {
	s := New("bikeshop")
	client := startServer(t, s)

	pinger := &flakyPinger{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.WatchDependency(ctx, pinger, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return servingStatus(client, "bikeshop") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	pinger.fail.Store(true)
	assert.Eventually(t, func() bool {
		return servingStatus(client, "") == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 10*time.Millisecond)
}
