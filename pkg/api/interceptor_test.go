package api

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/cuemby/rlvm/pkg/metrics"
)

type ctxKey struct{}

func TestInjectInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/rlvm.volumed.v1.VolumeService/ListVolumes"}

	t.Run("value reaches handler", func(t *testing.T) {
		interceptor := InjectInterceptor(func(ctx context.Context) (context.Context, error) {
			return context.WithValue(ctx, ctxKey{}, "vg0"), nil
		})

		resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
			return ctx.Value(ctxKey{}), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "vg0", resp)
	})

	t.Run("error rejects request", func(t *testing.T) {
		interceptor := InjectInterceptor(func(ctx context.Context) (context.Context, error) {
			return nil, status.Error(codes.Internal, "volume group not found: vg0")
		})

		called := false
		_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
			called = true
			return nil, nil
		})
		assert.Equal(t, codes.Internal, status.Code(err))
		assert.False(t, called)
	})
}

func TestLoggingInterceptor(t *testing.T) {
	interceptor := LoggingInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/csi.v1.Controller/CreateVolume"}
	counter := metrics.RPCRequestsTotal.WithLabelValues("csi.v1.Controller", "CreateVolume", codes.OutOfRange.String())
	before := testutil.ToFloat64(counter)

	_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.OutOfRange, "too small")
	})

	assert.Equal(t, codes.OutOfRange, status.Code(err), "errors pass through unchanged")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSplitMethod(t *testing.T) {
	tests := []struct {
		fullMethod  string
		wantService string
		wantMethod  string
	}{
		{"/csi.v1.Node/NodeStageVolume", "csi.v1.Node", "NodeStageVolume"},
		{"/rlvm.mountd.v1.MountService/Mount", "rlvm.mountd.v1.MountService", "Mount"},
		{"garbage", "unknown", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.fullMethod, func(t *testing.T) {
			service, method := splitMethod(tt.fullMethod)
			assert.Equal(t, tt.wantService, service)
			assert.Equal(t, tt.wantMethod, method)
		})
	}
}

func TestIsReadOnlyMethod(t *testing.T) {
	tests := []struct {
		method string
		want   bool
	}{
		{"ListVolumes", true},
		{"GetCapacity", true},
		{"ValidateVolumeCapabilities", true},
		{"Probe", true},
		{"NodeGetInfo", true},
		{"ControllerGetCapabilities", true},
		{"CreateVolume", false},
		{"NodePublishVolume", false},
		{"Mount", false},
		{"FormatVolume", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, isReadOnlyMethod(tt.method))
		})
	}
}

func TestServer_UnixSocketLifecycle(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "run", "plugin.sock")

	srv := NewServer(socket, func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	})
	healthpb.RegisterHealthServer(srv.GRPCServer(), health.NewServer())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	conn, err := grpc.NewClient("unix://"+socket, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var resp *healthpb.HealthCheckResponse
	require.Eventually(t, func() bool {
		resp, err = healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	srv.Stop()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.NoFileExists(t, socket)
}

func TestServer_StartRemovesStaleSocket(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "plugin.sock")
	lis, err := net.Listen("unix", socket)
	require.NoError(t, err)
	// Leave the socket file behind, as a crashed process would.
	lis.(*net.UnixListener).SetUnlinkOnClose(false)
	require.NoError(t, lis.Close())
	require.FileExists(t, socket)

	srv := NewServer(socket, nil)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("unix", socket)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)

	srv.Stop()
	assert.NoError(t, <-errCh)
}
