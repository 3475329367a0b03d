package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/container-storage-interface/spec/lib/go/csi"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/cuemby/rlvm/api/mountd"
	"github.com/cuemby/rlvm/pkg/log"
)

const (
	targetDirMode         fs.FileMode = 0o750
	readOnlyTargetDirMode fs.FileMode = 0o550
)

var nodeCapabilities = []*csi.NodeServiceCapability{
	{
		Type: &csi.NodeServiceCapability_Rpc{
			Rpc: &csi.NodeServiceCapability_RPC{
				Type: csi.NodeServiceCapability_RPC_STAGE_UNSTAGE_VOLUME,
			},
		},
	},
}

// MountTable reports whether a path is currently a mountpoint. Reading the
// mount table needs no privileges, so the node service consults it directly.
type MountTable interface {
	IsMounted(path string) (bool, error)
}

// Node implements the CSI node service on top of mountd
type Node struct {
	csi.UnimplementedNodeServer

	nodeID string
	mounts MountTable
	logger zerolog.Logger
}

var _ csi.NodeServer = (*Node)(nil)

// NewNode creates a node service for the host identified by nodeID.
func NewNode(nodeID string, mounts MountTable) *Node {
	return &Node{
		nodeID: nodeID,
		mounts: mounts,
		logger: log.WithComponent("node"),
	}
}

// NodeStageVolume mounts the volume's block device on the staging path.
func (n *Node) NodeStageVolume(ctx context.Context, req *csi.NodeStageVolumeRequest) (*csi.NodeStageVolumeResponse, error) {
	if req.GetVolumeId() == "" {
		return nil, status.Error(codes.InvalidArgument, "volume_id cannot be empty")
	}
	if req.GetStagingTargetPath() == "" {
		return nil, status.Error(codes.InvalidArgument, "staging_target_path cannot be empty")
	}
	if req.GetVolumeCapability() == nil {
		return nil, status.Error(codes.InvalidArgument, "volume_capability cannot be empty")
	}

	client, err := mountdClient(ctx)
	if err != nil {
		return nil, err
	}

	device, err := client.GetBlockPath(ctx, &pb.GetBlockPathRequest{Uuid: req.GetVolumeId()})
	if err != nil {
		return nil, err
	}
	if !exists(device.GetPath()) {
		return nil, status.Errorf(codes.FailedPrecondition,
			"volume %s does not have a valid device path %s: is it active?", req.GetVolumeId(), device.GetPath())
	}
	if !exists(req.GetStagingTargetPath()) {
		return nil, status.Errorf(codes.FailedPrecondition,
			"volume %s does not have a valid staging path: %s", req.GetVolumeId(), req.GetStagingTargetPath())
	}

	var flags []pb.MountFlag
	if isReadOnly(req.GetVolumeCapability()) {
		flags = append(flags, pb.MountFlag_MOUNT_FLAG_READ_ONLY)
	}

	if _, err := client.Mount(ctx, &pb.MountRequest{
		Mount: &pb.Mount{Src: device.GetPath(), Dst: req.GetStagingTargetPath()},
		Flags: flags,
	}); err != nil {
		return nil, err
	}

	logger := log.WithVolumeID(req.GetVolumeId())
	logger.Info().
		Str("device", device.GetPath()).
		Str("staging_path", req.GetStagingTargetPath()).
		Msg("Volume staged")
	return &csi.NodeStageVolumeResponse{}, nil
}

// NodeUnstageVolume unmounts the staging path.
func (n *Node) NodeUnstageVolume(ctx context.Context, req *csi.NodeUnstageVolumeRequest) (*csi.NodeUnstageVolumeResponse, error) {
	if req.GetVolumeId() == "" {
		return nil, status.Error(codes.InvalidArgument, "volume_id cannot be empty")
	}
	if req.GetStagingTargetPath() == "" {
		return nil, status.Error(codes.InvalidArgument, "staging_target_path cannot be empty")
	}

	client, err := mountdClient(ctx)
	if err != nil {
		return nil, err
	}

	device, err := client.GetBlockPath(ctx, &pb.GetBlockPathRequest{Uuid: req.GetVolumeId()})
	if err != nil {
		return nil, err
	}
	if !exists(device.GetPath()) {
		return nil, status.Errorf(codes.FailedPrecondition,
			"volume %s does not have a valid device path %s: is it active?", req.GetVolumeId(), device.GetPath())
	}

	if _, err := client.Unmount(ctx, &pb.UnmountRequest{Path: req.GetStagingTargetPath()}); err != nil {
		return nil, err
	}

	logger := log.WithVolumeID(req.GetVolumeId())
	logger.Info().Str("staging_path", req.GetStagingTargetPath()).Msg("Volume unstaged")
	return &csi.NodeUnstageVolumeResponse{}, nil
}

// NodePublishVolume bind mounts the staging path onto the target path,
// creating the target first. The staging path must already be a mountpoint,
// so publishing ahead of staging never exposes the bare staging directory.
func (n *Node) NodePublishVolume(ctx context.Context, req *csi.NodePublishVolumeRequest) (*csi.NodePublishVolumeResponse, error) {
	if req.GetVolumeId() == "" {
		return nil, status.Error(codes.InvalidArgument, "volume_id cannot be empty")
	}
	if req.GetStagingTargetPath() == "" {
		return nil, status.Error(codes.InvalidArgument, "staging_target_path cannot be empty")
	}
	if req.GetTargetPath() == "" {
		return nil, status.Error(codes.InvalidArgument, "target_path cannot be empty")
	}
	if req.GetVolumeCapability() == nil {
		return nil, status.Error(codes.InvalidArgument, "volume_capability cannot be empty")
	}

	client, err := mountdClient(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := client.GetBlockPath(ctx, &pb.GetBlockPathRequest{Uuid: req.GetVolumeId()}); err != nil {
		return nil, err
	}

	readOnly := isReadOnly(req.GetVolumeCapability())
	if err := makeTarget(req.GetTargetPath(), readOnly); err != nil {
		return nil, status.Errorf(codes.Internal, "could not create target path: %v", err)
	}

	if err := n.ensureStaged(req.GetVolumeId(), req.GetStagingTargetPath()); err != nil {
		return nil, err
	}

	flags := []pb.MountFlag{pb.MountFlag_MOUNT_FLAG_BIND}
	if readOnly {
		flags = append(flags, pb.MountFlag_MOUNT_FLAG_READ_ONLY)
	}

	if _, err := client.Mount(ctx, &pb.MountRequest{
		Mount: &pb.Mount{Src: req.GetStagingTargetPath(), Dst: req.GetTargetPath()},
		Flags: flags,
	}); err != nil {
		return nil, err
	}

	logger := log.WithVolumeID(req.GetVolumeId())
	logger.Info().
		Str("target_path", req.GetTargetPath()).
		Bool("read_only", readOnly).
		Msg("Volume published")
	return &csi.NodePublishVolumeResponse{}, nil
}

// NodeUnpublishVolume unmounts the target path and removes it.
func (n *Node) NodeUnpublishVolume(ctx context.Context, req *csi.NodeUnpublishVolumeRequest) (*csi.NodeUnpublishVolumeResponse, error) {
	if req.GetVolumeId() == "" {
		return nil, status.Error(codes.InvalidArgument, "volume_id cannot be empty")
	}
	if req.GetTargetPath() == "" {
		return nil, status.Error(codes.InvalidArgument, "target_path cannot be empty")
	}

	client, err := mountdClient(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := client.GetBlockPath(ctx, &pb.GetBlockPathRequest{Uuid: req.GetVolumeId()}); err != nil {
		return nil, err
	}

	if _, err := client.Unmount(ctx, &pb.UnmountRequest{Path: req.GetTargetPath()}); err != nil {
		return nil, err
	}

	logger := log.WithVolumeID(req.GetVolumeId())
	if err := os.Remove(req.GetTargetPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Str("target_path", req.GetTargetPath()).Msg("Failed to remove target path")
	}

	logger.Info().Str("target_path", req.GetTargetPath()).Msg("Volume unpublished")
	return &csi.NodeUnpublishVolumeResponse{}, nil
}

func (n *Node) NodeGetCapabilities(ctx context.Context, _ *csi.NodeGetCapabilitiesRequest) (*csi.NodeGetCapabilitiesResponse, error) {
	return &csi.NodeGetCapabilitiesResponse{Capabilities: nodeCapabilities}, nil
}

func (n *Node) NodeGetInfo(ctx context.Context, _ *csi.NodeGetInfoRequest) (*csi.NodeGetInfoResponse, error) {
	return &csi.NodeGetInfoResponse{
		NodeId:             n.nodeID,
		MaxVolumesPerNode:  0,
		AccessibleTopology: Topology(n.nodeID),
	}, nil
}

// ensureStaged fails with FailedPrecondition unless stagingPath is a
// mountpoint.
func (n *Node) ensureStaged(volumeID, stagingPath string) error {
	if !exists(stagingPath) {
		return status.Errorf(codes.FailedPrecondition,
			"volume %s does not have a valid staging path %s: was it staged?", volumeID, stagingPath)
	}
	mounted, err := n.mounts.IsMounted(stagingPath)
	if err != nil {
		return status.Errorf(codes.Internal, "could not read mount table for %s: %v", stagingPath, err)
	}
	if !mounted {
		return status.Errorf(codes.FailedPrecondition,
			"volume %s staging path %s is not mounted: was it staged?", volumeID, stagingPath)
	}
	return nil
}

// makeTarget creates the publish target. A read-only target carries no write
// bits so that mountd accepts it as a read-only destination. The mode is set
// only on creation: once published the target is the root of the mounted
// filesystem, and a retried publish must not chmod it.
func makeTarget(path string, readOnly bool) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(path, targetDirMode); err != nil {
		return err
	}
	mode := targetDirMode
	if readOnly {
		mode = readOnlyTargetDirMode
	}
	return os.Chmod(path, mode)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
