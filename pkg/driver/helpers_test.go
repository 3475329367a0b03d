package driver

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	mountdpb "github.com/cuemby/rlvm/api/mountd"
	volumedpb "github.com/cuemby/rlvm/api/volumed"
	"github.com/cuemby/rlvm/pkg/api"
	"github.com/cuemby/rlvm/pkg/lvm"
	"github.com/cuemby/rlvm/pkg/lvm/lvmtest"
	"github.com/cuemby/rlvm/pkg/mountd"
	"github.com/cuemby/rlvm/pkg/resource"
	"github.com/cuemby/rlvm/pkg/volumed"
)

const (
	testNodeID = "7d9f7c1e-1f5a-4b6e-9d1c-3c2a1b0e9f88"
	gib        = int64(1 << 30)
	mib        = int64(1 << 20)
)

// serve starts an in-memory gRPC server and returns a client connection to it.
func serve(t *testing.T, register func(*grpc.Server), interceptors ...grpc.UnaryServerInterceptor) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	register(s)
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
	return conn
}

type volumedFixture struct {
	manager   *lvmtest.Manager
	formatter *lvmtest.Formatter
	client    volumedpb.VolumeServiceClient
}

// newVolumed runs a real volumed server backed by an in-memory volume group.
func newVolumed(t *testing.T, size, spare uint64) *volumedFixture {
	t.Helper()

	manager := lvmtest.NewManager("vg0", size)
	formatter := &lvmtest.Formatter{}
	srv, err := volumed.NewServer(&volumed.Config{VolumeGroup: "vg0", SpareBytes: spare}, manager, formatter)
	require.NoError(t, err)

	conn := serve(t, func(s *grpc.Server) {
		volumedpb.RegisterVolumeServiceServer(s, srv)
	}, api.InjectInterceptor(srv.InjectVolumeGroup))

	return &volumedFixture{
		manager:   manager,
		formatter: formatter,
		client:    volumedpb.NewVolumeServiceClient(conn),
	}
}

func (f *volumedFixture) ctx() context.Context {
	return volumedpb.NewContext(context.Background(), f.client)
}

// fakeHost records mount syscalls and keeps an in-memory mount table.
type fakeHost struct {
	mu      sync.Mutex
	mounted map[string]string
	calls   int
}

func newFakeHost() *fakeHost {
	return &fakeHost{mounted: make(map[string]string)}
}

func (h *fakeHost) Mount(source, target, fstype, options string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.mounted[filepath.Clean(target)] = options
	return nil
}

func (h *fakeHost) Unmount(target string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.mounted, filepath.Clean(target))
	return nil
}

func (h *fakeHost) IsMounted(path string) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.mounted[filepath.Clean(path)]
	return ok, nil
}

func (h *fakeHost) options(target string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	opts, ok := h.mounted[filepath.Clean(target)]
	return opts, ok
}

func (h *fakeHost) mountCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// deviceResolver resolves UUIDs through an in-memory volume group to device
// files under dir.
type deviceResolver struct {
	manager *lvmtest.Manager
	dir     string
}

func (r deviceResolver) BlockPath(ctx context.Context, uuid resource.UUID) (string, error) {
	lv, err := r.manager.LogicalVolumeByUUID(ctx, "", uuid)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.dir, lv.Name), nil
}

// staticResolver maps UUIDs to fixed paths.
type staticResolver map[resource.UUID]string

func (r staticResolver) BlockPath(_ context.Context, uuid resource.UUID) (string, error) {
	path, ok := r[uuid]
	if !ok {
		return "", fmt.Errorf("logical volume lv_uuid=%s: %w", uuid, lvm.ErrNotFound)
	}
	return path, nil
}

type mountdFixture struct {
	host   *fakeHost
	client mountdpb.MountServiceClient
}

// newMountd runs a real mountd server owned by the current user.
func newMountd(t *testing.T, resolver mountd.BlockResolver) *mountdFixture {
	t.Helper()

	owner := mountd.Owner{User: "test", Group: "test", UID: os.Getuid(), GID: os.Getgid()}
	host := newFakeHost()
	srv := mountd.NewServer(mountd.NewPolicy(owner, nil), resolver, host, host)

	conn := serve(t, func(s *grpc.Server) {
		mountdpb.RegisterMountServiceServer(s, srv)
	})

	return &mountdFixture{host: host, client: mountdpb.NewMountServiceClient(conn)}
}

func (f *mountdFixture) ctx() context.Context {
	return mountdpb.NewContext(context.Background(), f.client)
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
}
