package volumed

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cuemby/rlvm/pkg/lvm"
)

type volumeGroupKey struct{}

// InjectVolumeGroup looks the managed volume group up and attaches it to ctx.
// It runs once per request, so every handler sees the group's current free
// space. Use it with api.InjectInterceptor.
func (s *Server) InjectVolumeGroup(ctx context.Context) (context.Context, error) {
	vg, err := s.manager.VolumeGroup(ctx, s.vgName)
	if err != nil {
		s.logger.Error().Err(err).Str("volume_group", s.vgName.String()).Msg("Volume group lookup failed")
		return nil, status.Errorf(codes.Internal, "volume group not found: %s", s.vgName)
	}
	return context.WithValue(ctx, volumeGroupKey{}, vg), nil
}

func volumeGroupFrom(ctx context.Context) (*lvm.VolumeGroup, error) {
	vg, ok := ctx.Value(volumeGroupKey{}).(*lvm.VolumeGroup)
	if !ok {
		return nil, status.Error(codes.Internal, "no volume group attached to request")
	}
	return vg, nil
}

// ProvisionableBytes reports the current provisionable bytes of the group.
func (s *Server) ProvisionableBytes(ctx context.Context) (uint64, error) {
	vg, err := s.manager.VolumeGroup(ctx, s.vgName)
	if err != nil {
		return 0, err
	}
	return s.provisionable(vg), nil
}

// LogicalVolumeCount reports how many logical volumes the group holds.
func (s *Server) LogicalVolumeCount(ctx context.Context) (int, error) {
	lvs, err := s.manager.LogicalVolumes(ctx, s.vgName)
	if err != nil {
		return 0, err
	}
	return len(lvs), nil
}
