package mountd

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/cuemby/rlvm/api/mountd"
	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/lvm"
	"github.com/cuemby/rlvm/pkg/metrics"
	"github.com/cuemby/rlvm/pkg/resource"
)

// deviceFSType is the filesystem every provisioned volume is formatted with.
const deviceFSType = "xfs"

// Server implements the mount authority.
type Server struct {
	pb.UnimplementedMountServiceServer

	policy   *Policy
	resolver BlockResolver
	mounter  Mounter
	table    MountTable
	chown    func(path string, owner Owner) error
	logger   zerolog.Logger
}

var _ pb.MountServiceServer = (*Server)(nil)

// NewServer creates a mount authority enforcing policy.
func NewServer(policy *Policy, resolver BlockResolver, mounter Mounter, table MountTable) *Server {
	return &Server{
		policy:   policy,
		resolver: resolver,
		mounter:  mounter,
		table:    table,
		chown:    chown,
		logger:   log.WithComponent("mountd"),
	}
}

// GetBlockPath resolves a logical volume UUID to its device node.
func (s *Server) GetBlockPath(ctx context.Context, req *pb.GetBlockPathRequest) (*pb.BlockDevice, error) {
	uuid, err := resource.ParseUUID(req.GetUuid())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	path, err := s.resolver.BlockPath(ctx, uuid)
	if err != nil {
		if errors.Is(err, lvm.ErrNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to resolve %s: %v", uuid, err)
	}

	return &pb.BlockDevice{Path: path}, nil
}

// Mount mounts src onto dst. A dst that is already mounted is left alone.
func (s *Server) Mount(ctx context.Context, req *pb.MountRequest) (*pb.MountResponse, error) {
	if req.GetMount() == nil {
		return nil, status.Error(codes.InvalidArgument, "missing required mount")
	}
	src, dst := req.GetMount().GetSrc(), req.GetMount().GetDst()
	if src == "" {
		return nil, status.Error(codes.InvalidArgument, "missing required field src in mount")
	}
	if dst == "" {
		return nil, status.Error(codes.InvalidArgument, "missing required field dst in mount")
	}

	readOnly := req.HasFlag(pb.MountFlag_MOUNT_FLAG_READ_ONLY)
	bind := req.HasFlag(pb.MountFlag_MOUNT_FLAG_BIND)

	src, err := s.policy.EnsureInteractable(src, false)
	if err != nil {
		return nil, status.Errorf(codes.PermissionDenied, "source %s cannot be mounted: %v", req.GetMount().GetSrc(), err)
	}
	dst, err = s.policy.EnsureInteractable(dst, readOnly)
	if err != nil {
		return nil, status.Errorf(codes.PermissionDenied, "destination %s cannot be mounted onto: %v", req.GetMount().GetDst(), err)
	}

	info, err := os.Stat(dst)
	if err != nil || !info.IsDir() {
		return nil, status.Errorf(codes.FailedPrecondition, "mount dst is not a directory: %s", dst)
	}

	mounted, err := s.table.IsMounted(dst)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "could not read mount table: %v", err)
	}
	if mounted {
		s.logger.Info().Str("dst", dst).Msg("Skipping mount, destination already mounted")
		metrics.MountOperationsTotal.WithLabelValues("mount", metrics.ResultNoop).Inc()
		return &pb.MountResponse{}, nil
	}

	fstype, options := mountOptions(bind, readOnly)
	if err := s.mounter.Mount(src, dst, fstype, options); err != nil {
		metrics.MountOperationsTotal.WithLabelValues("mount", metrics.ResultError).Inc()
		return nil, status.Errorf(codes.Internal, "could not mount %s on %s: %v", src, dst, err)
	}
	metrics.MountOperationsTotal.WithLabelValues("mount", metrics.ResultSuccess).Inc()

	s.logger.Info().
		Str("src", src).
		Str("dst", dst).
		Str("fstype", fstype).
		Str("options", options).
		Msg("Mounted")

	owner := s.policy.Owner()
	if err := s.chown(dst, owner); err != nil {
		return nil, status.Errorf(codes.Internal, "could not chown %s to %s: %v", dst, owner, err)
	}

	return &pb.MountResponse{}, nil
}

// Unmount detaches the mount at path. A path that is not mounted is left alone.
func (s *Server) Unmount(ctx context.Context, req *pb.UnmountRequest) (*pb.UnmountResponse, error) {
	if req.GetPath() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing required field path in unmount")
	}

	path, err := s.policy.Resolve(req.GetPath())
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info().Str("path", req.GetPath()).Msg("Skipping unmount, path does not exist")
		metrics.MountOperationsTotal.WithLabelValues("unmount", metrics.ResultNoop).Inc()
		return &pb.UnmountResponse{}, nil
	}
	if err != nil {
		return nil, status.Errorf(codes.PermissionDenied, "mountpoint %s cannot be unmounted: %v", req.GetPath(), err)
	}

	mounted, err := s.table.IsMounted(path)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "could not read mount table: %v", err)
	}
	if !mounted {
		s.logger.Info().Str("path", path).Msg("Skipping unmount, path not mounted")
		metrics.MountOperationsTotal.WithLabelValues("unmount", metrics.ResultNoop).Inc()
		return &pb.UnmountResponse{}, nil
	}

	if _, err := s.policy.EnsureInteractable(path, false); err != nil {
		return nil, status.Errorf(codes.PermissionDenied, "mountpoint %s cannot be unmounted: %v", req.GetPath(), err)
	}

	if err := s.mounter.Unmount(path); err != nil {
		metrics.MountOperationsTotal.WithLabelValues("unmount", metrics.ResultError).Inc()
		return nil, status.Errorf(codes.Internal, "could not unmount %s: %v", path, err)
	}
	metrics.MountOperationsTotal.WithLabelValues("unmount", metrics.ResultSuccess).Inc()

	s.logger.Info().Str("path", path).Msg("Unmounted")
	return &pb.UnmountResponse{}, nil
}

// mountOptions returns the filesystem type and option string for a request.
// nodev and nosuid are always set.
func mountOptions(bind, readOnly bool) (fstype, options string) {
	var opts []string
	if bind {
		opts = append(opts, "bind")
	} else {
		fstype = deviceFSType
	}
	if readOnly {
		opts = append(opts, "ro")
	}
	opts = append(opts, "nodev", "nosuid")
	return fstype, strings.Join(opts, ",")
}
