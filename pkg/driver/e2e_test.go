package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/container-storage-interface/spec/lib/go/csi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	mountdpb "github.com/cuemby/rlvm/api/mountd"
	volumedpb "github.com/cuemby/rlvm/api/volumed"
	"github.com/cuemby/rlvm/pkg/api"
)

// TestVolumeLifecycle drives a volume through every CSI call a CO makes, over
// gRPC, against real volumed and mountd servers backed by in-memory hosts.
func TestVolumeLifecycle(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	v := newVolumed(t, uint64(10*gib), uint64(gib))
	m := newMountd(t, deviceResolver{manager: v.manager, dir: filepath.Join(dir, "dev")})

	controllerConn := serve(t, func(s *grpc.Server) {
		csi.RegisterIdentityServer(s, NewIdentity("test", ControllerVerifier()))
		csi.RegisterControllerServer(s, NewController(testNodeID))
	}, api.InjectInterceptor(func(ctx context.Context) (context.Context, error) {
		return volumedpb.NewContext(ctx, v.client), nil
	}))

	nodeConn := serve(t, func(s *grpc.Server) {
		csi.RegisterIdentityServer(s, NewIdentity("test", NodeVerifier()))
		csi.RegisterNodeServer(s, NewNode(testNodeID, m.host))
	}, api.InjectInterceptor(func(ctx context.Context) (context.Context, error) {
		return mountdpb.NewContext(ctx, m.client), nil
	}))

	identity := csi.NewIdentityClient(controllerConn)
	controller := csi.NewControllerClient(controllerConn)
	node := csi.NewNodeClient(nodeConn)
	ctx := context.Background()

	probe, err := identity.Probe(ctx, &csi.ProbeRequest{})
	require.NoError(t, err)
	assert.True(t, probe.GetReady().GetValue())

	capacity, err := controller.GetCapacity(ctx, &csi.GetCapacityRequest{})
	require.NoError(t, err)
	assert.Equal(t, 9*gib, capacity.GetAvailableCapacity())

	created, err := controller.CreateVolume(ctx, createRequest("pvc-e2e", 2*gib, 0))
	require.NoError(t, err)
	id := created.GetVolume().GetVolumeId()

	// The block device appears once the logical volume is active.
	touch(t, filepath.Join(dir, "dev", SafeName("pvc-e2e")))

	capacity, err = controller.GetCapacity(ctx, &csi.GetCapacityRequest{})
	require.NoError(t, err)
	assert.Equal(t, 7*gib, capacity.GetAvailableCapacity())

	info, err := node.NodeGetInfo(ctx, &csi.NodeGetInfoRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.GetVolume().GetAccessibleTopology()[0].GetSegments(), info.GetAccessibleTopology().GetSegments())

	staging := filepath.Join(dir, "staging")
	require.NoError(t, os.Mkdir(staging, 0o750))
	target := filepath.Join(dir, "target")

	_, err = node.NodeStageVolume(ctx, &csi.NodeStageVolumeRequest{
		VolumeId:          id,
		StagingTargetPath: staging,
		VolumeCapability:  mountCapability,
	})
	require.NoError(t, err)

	_, err = node.NodePublishVolume(ctx, &csi.NodePublishVolumeRequest{
		VolumeId:          id,
		StagingTargetPath: staging,
		TargetPath:        target,
		VolumeCapability:  mountCapability,
	})
	require.NoError(t, err)

	_, mounted := m.host.options(target)
	require.True(t, mounted)

	// A workload writes through the published path.
	require.NoError(t, os.WriteFile(filepath.Join(target, "data"), []byte("hello"), 0o600))
	require.NoError(t, os.Remove(filepath.Join(target, "data")))

	_, err = node.NodeUnpublishVolume(ctx, &csi.NodeUnpublishVolumeRequest{VolumeId: id, TargetPath: target})
	require.NoError(t, err)
	assert.NoDirExists(t, target)

	_, err = node.NodeUnstageVolume(ctx, &csi.NodeUnstageVolumeRequest{VolumeId: id, StagingTargetPath: staging})
	require.NoError(t, err)
	_, mounted = m.host.options(staging)
	assert.False(t, mounted)

	_, err = controller.DeleteVolume(ctx, &csi.DeleteVolumeRequest{VolumeId: id})
	require.NoError(t, err)

	list, err := controller.ListVolumes(ctx, &csi.ListVolumesRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetEntries())
	assert.Equal(t, 2, m.host.mountCalls())
}
