package volumed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/cuemby/rlvm/api/volumed"
	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/lvm"
	"github.com/cuemby/rlvm/pkg/resource"
)

// VolumeManager is the subset of *lvm.Manager volumed relies on.
type VolumeManager interface {
	VolumeGroup(ctx context.Context, name resource.Name) (*lvm.VolumeGroup, error)
	LogicalVolumes(ctx context.Context, vg resource.Name) ([]*lvm.LogicalVolume, error)
	LogicalVolumeByName(ctx context.Context, vg, name resource.Name) (*lvm.LogicalVolume, error)
	LogicalVolumeByUUID(ctx context.Context, vg resource.Name, uuid resource.UUID) (*lvm.LogicalVolume, error)
	CreateLogicalVolume(ctx context.Context, vg resource.Name, opts lvm.CreateOptions) (*lvm.LogicalVolume, error)
	RemoveLogicalVolume(ctx context.Context, vg, name resource.Name) error
}

// Server implements the volume-group authority.
type Server struct {
	pb.UnimplementedVolumeServiceServer

	manager   VolumeManager
	formatter lvm.Formatter
	vgName    resource.Name
	spare     uint64
	logger    zerolog.Logger
}

var _ pb.VolumeServiceServer = (*Server)(nil)

// NewServer creates a volume-group authority for the group named in cfg.
func NewServer(cfg *Config, manager VolumeManager, formatter lvm.Formatter) (*Server, error) {
	name, err := resource.ParseName(cfg.VolumeGroup)
	if err != nil {
		return nil, err
	}
	return &Server{
		manager:   manager,
		formatter: formatter,
		vgName:    name,
		spare:     cfg.SpareBytes,
		logger:    log.WithComponent("volumed"),
	}, nil
}

// ListVolumes lists every logical volume in the managed group.
func (s *Server) ListVolumes(ctx context.Context, _ *pb.Empty) (*pb.ListVolumesResponse, error) {
	vg, err := volumeGroupFrom(ctx)
	if err != nil {
		return nil, err
	}

	lvs, err := s.manager.LogicalVolumes(ctx, resource.Name(vg.Name))
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.ListVolumesResponse{Volumes: make([]*pb.LogicalVolume, 0, len(lvs))}
	for _, lv := range lvs {
		resp.Volumes = append(resp.Volumes, toProto(lv))
	}
	return resp, nil
}

// GetFreeBytes reports the unallocated bytes of the group minus the spare,
// along with the extent size every allocation is rounded up to.
func (s *Server) GetFreeBytes(ctx context.Context, _ *pb.Empty) (*pb.GetFreeBytesResponse, error) {
	vg, err := volumeGroupFrom(ctx)
	if err != nil {
		return nil, err
	}
	return &pb.GetFreeBytesResponse{
		BytesFree:       s.provisionable(vg),
		ExtentSizeBytes: vg.ExtentSizeBytes,
	}, nil
}

// CreateVolume creates and activates a logical volume.
func (s *Server) CreateVolume(ctx context.Context, req *pb.CreateVolumeRequest) (*pb.LogicalVolume, error) {
	vg, err := volumeGroupFrom(ctx)
	if err != nil {
		return nil, err
	}

	name, err := resource.ParseName(req.GetName())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	capacity, err := resource.CapacityFromUint(req.GetCapacityBytes())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	tags := make([]resource.Tag, 0, len(req.GetTags()))
	for _, raw := range req.GetTags() {
		tag, err := resource.ParseTag(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		tags = append(tags, tag)
	}

	lv, err := s.manager.CreateLogicalVolume(ctx, resource.Name(vg.Name), lvm.CreateOptions{
		Name:     name,
		Capacity: capacity,
		Tags:     tags,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info().
		Str("name", lv.Name).
		Str("uuid", lv.UUID).
		Uint64("bytes", lv.SizeBytes).
		Msg("Created logical volume")
	return toProto(lv), nil
}

// DeleteVolume removes a logical volume by name.
func (s *Server) DeleteVolume(ctx context.Context, req *pb.DeleteVolumeRequest) (*pb.Empty, error) {
	vg, err := volumeGroupFrom(ctx)
	if err != nil {
		return nil, err
	}

	name, err := resource.ParseName(req.GetName())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.manager.RemoveLogicalVolume(ctx, resource.Name(vg.Name), name); err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info().Str("name", name.String()).Msg("Removed logical volume")
	return &pb.Empty{}, nil
}

// FormatVolume writes a fresh xfs filesystem onto a logical volume.
func (s *Server) FormatVolume(ctx context.Context, req *pb.FormatVolumeRequest) (*pb.Empty, error) {
	vg, err := volumeGroupFrom(ctx)
	if err != nil {
		return nil, err
	}

	name, err := resource.ParseName(req.GetName())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	lv, err := s.manager.LogicalVolumeByName(ctx, resource.Name(vg.Name), name)
	if err != nil {
		return nil, statusFromError(err)
	}

	if err := s.formatter.Format(ctx, lv.Path); err != nil {
		return nil, status.Errorf(codes.Internal, "could not format volume %s: %v", name, err)
	}

	s.logger.Info().Str("name", lv.Name).Str("path", lv.Path).Msg("Formatted logical volume")
	return &pb.Empty{}, nil
}

// GetVolume looks a logical volume up by name or UUID.
func (s *Server) GetVolume(ctx context.Context, req *pb.GetVolumeRequest) (*pb.LogicalVolume, error) {
	vg, err := volumeGroupFrom(ctx)
	if err != nil {
		return nil, err
	}
	vgName := resource.Name(vg.Name)

	var lv *lvm.LogicalVolume
	switch sel := req.GetSelector().(type) {
	case *pb.GetVolumeRequest_Uuid:
		uuid, err := resource.ParseUUID(sel.Uuid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		lv, err = s.manager.LogicalVolumeByUUID(ctx, vgName, uuid)
		if err != nil {
			return nil, statusFromError(err)
		}
	case *pb.GetVolumeRequest_Name:
		name, err := resource.ParseName(sel.Name)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		lv, err = s.manager.LogicalVolumeByName(ctx, vgName, name)
		if err != nil {
			return nil, statusFromError(err)
		}
	default:
		return nil, status.Error(codes.InvalidArgument, "missing required identifier")
	}

	return toProto(lv), nil
}

func (s *Server) provisionable(vg *lvm.VolumeGroup) uint64 {
	if vg.FreeBytes <= s.spare {
		return 0
	}
	return vg.FreeBytes - s.spare
}

func toProto(lv *lvm.LogicalVolume) *pb.LogicalVolume {
	return &pb.LogicalVolume{
		Uuid:          lv.UUID,
		Name:          lv.Name,
		CapacityBytes: lv.SizeBytes,
		VolumeGroup:   lv.VolumeGroup,
		Tags:          lv.Tags,
	}
}

// statusFromError maps volume manager errors onto gRPC status codes.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, lvm.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, lvm.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, lvm.ErrInvalidCommand):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
