package driver

import (
	"context"
	"maps"
	"math"
	"strconv"

	"github.com/container-storage-interface/spec/lib/go/csi"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/cuemby/rlvm/api/volumed"
	"github.com/cuemby/rlvm/pkg/log"
)

var controllerCapabilities = []*csi.ControllerServiceCapability{
	controllerCapability(csi.ControllerServiceCapability_RPC_LIST_VOLUMES),
	controllerCapability(csi.ControllerServiceCapability_RPC_CREATE_DELETE_VOLUME),
	controllerCapability(csi.ControllerServiceCapability_RPC_GET_CAPACITY),
}

// confirmedCapabilities is the capability set every volume supports.
var confirmedCapabilities = []*csi.VolumeCapability{
	{
		AccessMode: &csi.VolumeCapability_AccessMode{
			Mode: csi.VolumeCapability_AccessMode_SINGLE_NODE_WRITER,
		},
		AccessType: &csi.VolumeCapability_Block{
			Block: &csi.VolumeCapability_BlockVolume{},
		},
	},
	{
		AccessMode: &csi.VolumeCapability_AccessMode{
			Mode: csi.VolumeCapability_AccessMode_SINGLE_NODE_WRITER,
		},
		AccessType: &csi.VolumeCapability_Mount{
			Mount: &csi.VolumeCapability_MountVolume{FsType: "xfs"},
		},
	},
}

func controllerCapability(t csi.ControllerServiceCapability_RPC_Type) *csi.ControllerServiceCapability {
	return &csi.ControllerServiceCapability{
		Type: &csi.ControllerServiceCapability_Rpc{
			Rpc: &csi.ControllerServiceCapability_RPC{Type: t},
		},
	}
}

// Controller implements the CSI controller service on top of volumed
type Controller struct {
	csi.UnimplementedControllerServer

	nodeID string
	logger zerolog.Logger
}

var _ csi.ControllerServer = (*Controller)(nil)

// NewController creates a controller for the host identified by nodeID.
func NewController(nodeID string) *Controller {
	return &Controller{
		nodeID: nodeID,
		logger: log.WithComponent("controller"),
	}
}

// CreateVolume provisions and formats a logical volume. Repeating a request
// with the same name returns the existing volume.
func (c *Controller) CreateVolume(ctx context.Context, req *csi.CreateVolumeRequest) (*csi.CreateVolumeResponse, error) {
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing volume name")
	}
	if len(req.GetVolumeCapabilities()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "missing volume capabilities")
	}

	capacity, limit, err := requestedCapacity(req.GetCapacityRange())
	if err != nil {
		return nil, err
	}

	client, err := volumedClient(ctx)
	if err != nil {
		return nil, err
	}

	safeName := SafeName(req.GetName())
	logger := c.logger.With().Str("name", req.GetName()).Str("lv", safeName).Logger()

	lv, err := c.ensureVolume(ctx, client, req.GetName(), safeName, capacity, limit)
	if err != nil {
		return nil, err
	}

	if _, err := client.FormatVolume(ctx, &pb.FormatVolumeRequest{Name: safeName}); err != nil {
		logger.Error().Err(err).Msg("Failed to format volume")
		return nil, err
	}

	logger.Info().Str("volume_id", lv.GetUuid()).Uint64("bytes", lv.GetCapacityBytes()).Msg("Volume ready")

	vol := c.toVolume(lv)
	vol.VolumeContext[VolumeContextName] = req.GetName()
	return &csi.CreateVolumeResponse{Volume: vol}, nil
}

// ensureVolume returns the logical volume named safeName, creating it when it
// does not exist. An existing volume is reused only when its size is exactly
// what this request allocates, which is capacity rounded up to whole extents.
// A concurrent create of the same name is resolved by looking the winner up
// again.
func (c *Controller) ensureVolume(ctx context.Context, client pb.VolumeServiceClient, name, safeName string, capacity, limit int64) (*pb.LogicalVolume, error) {
	for attempt := 0; ; attempt++ {
		free, err := client.GetFreeBytes(ctx, &pb.Empty{})
		if err != nil {
			return nil, err
		}

		allocated := roundToExtent(uint64(capacity), free.GetExtentSizeBytes())
		if limit > 0 && allocated > uint64(limit) {
			return nil, status.Errorf(codes.OutOfRange,
				"volume size %d rounded to whole extents is %d, above limit_bytes %d", capacity, allocated, limit)
		}

		lv, err := client.GetVolume(ctx, pb.ByName(safeName))
		switch status.Code(err) {
		case codes.OK:
			if lv.GetCapacityBytes() != allocated {
				return nil, status.Errorf(codes.AlreadyExists,
					"volume %s already exists with %d bytes, %d bytes requested", name, lv.GetCapacityBytes(), allocated)
			}
			return lv, nil
		case codes.NotFound:
		default:
			return nil, err
		}

		// Free space only gates new allocations; an existing volume is
		// reused even when the group has since filled up.
		if uint64(capacity) > free.GetBytesFree() {
			return nil, status.Errorf(codes.OutOfRange,
				"cannot create volume larger than the space available: %d > %d", capacity, free.GetBytesFree())
		}

		lv, err = client.CreateVolume(ctx, &pb.CreateVolumeRequest{
			Name:          safeName,
			CapacityBytes: uint64(capacity),
			Tags:          []string{nameTag(name)},
		})
		if status.Code(err) == codes.AlreadyExists && attempt == 0 {
			c.logger.Debug().Str("lv", safeName).Msg("Lost create race, retrying lookup")
			continue
		}
		return lv, err
	}
}

// DeleteVolume removes a volume. Deleting an unknown volume succeeds.
func (c *Controller) DeleteVolume(ctx context.Context, req *csi.DeleteVolumeRequest) (*csi.DeleteVolumeResponse, error) {
	if req.GetVolumeId() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing required field volume_id")
	}

	client, err := volumedClient(ctx)
	if err != nil {
		return nil, err
	}

	logger := log.WithVolumeID(req.GetVolumeId())

	lv, err := client.GetVolume(ctx, pb.ByUUID(req.GetVolumeId()))
	switch status.Code(err) {
	case codes.OK:
	case codes.NotFound, codes.InvalidArgument:
		logger.Warn().Err(err).Msg("Attempted to delete non-existent volume, ignoring")
		return &csi.DeleteVolumeResponse{}, nil
	default:
		return nil, err
	}

	_, err = client.DeleteVolume(ctx, &pb.DeleteVolumeRequest{Name: lv.GetName()})
	if err != nil && status.Code(err) != codes.NotFound {
		return nil, err
	}

	logger.Info().Str("lv", lv.GetName()).Msg("Volume deleted")
	return &csi.DeleteVolumeResponse{}, nil
}

// ListVolumes pages through the volume group. The token is the index of the
// first entry of the next page.
func (c *Controller) ListVolumes(ctx context.Context, req *csi.ListVolumesRequest) (*csi.ListVolumesResponse, error) {
	if req.GetMaxEntries() < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "max_entries must not be negative: %d", req.GetMaxEntries())
	}

	start := 0
	if token := req.GetStartingToken(); token != "" {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			return nil, status.Errorf(codes.Aborted, "starting_token must be a non-negative integer: %q", token)
		}
		start = n
	}

	client, err := volumedClient(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.ListVolumes(ctx, &pb.Empty{})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "could not list volumes: %v", err)
	}

	total := len(resp.GetVolumes())
	if start > total {
		return nil, status.Errorf(codes.Aborted, "starting_token %d is beyond the %d available volumes", start, total)
	}

	end := total
	if maxEntries := int(req.GetMaxEntries()); maxEntries > 0 && start+maxEntries < total {
		end = start + maxEntries
	}

	entries := make([]*csi.ListVolumesResponse_Entry, 0, end-start)
	for _, lv := range resp.GetVolumes()[start:end] {
		entries = append(entries, &csi.ListVolumesResponse_Entry{Volume: c.toVolume(lv)})
	}

	out := &csi.ListVolumesResponse{Entries: entries}
	if end < total {
		out.NextToken = strconv.Itoa(end)
	}
	return out, nil
}

// GetCapacity reports the provisionable bytes of the volume group.
func (c *Controller) GetCapacity(ctx context.Context, req *csi.GetCapacityRequest) (*csi.GetCapacityResponse, error) {
	for _, capability := range req.GetVolumeCapabilities() {
		if isMultiNode(capability.GetAccessMode().GetMode()) {
			return &csi.GetCapacityResponse{}, nil
		}
	}

	if topology := req.GetAccessibleTopology(); topology != nil &&
		maps.Equal(topology.GetSegments(), Topology(c.nodeID).GetSegments()) {
		return &csi.GetCapacityResponse{}, nil
	}

	client, err := volumedClient(ctx)
	if err != nil {
		return nil, err
	}

	free, err := client.GetFreeBytes(ctx, &pb.Empty{})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "could not read free space: %v", err)
	}

	available := int64(math.MaxInt64)
	if free.GetBytesFree() < math.MaxInt64 {
		available = int64(free.GetBytesFree())
	}

	return &csi.GetCapacityResponse{
		AvailableCapacity: available,
		MinimumVolumeSize: wrapperspb.Int64(MinVolumeSizeBytes),
	}, nil
}

// ValidateVolumeCapabilities confirms the fixed capability set of rlvm volumes.
func (c *Controller) ValidateVolumeCapabilities(ctx context.Context, req *csi.ValidateVolumeCapabilitiesRequest) (*csi.ValidateVolumeCapabilitiesResponse, error) {
	if req.GetVolumeId() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing required field volume_id")
	}
	if len(req.GetVolumeCapabilities()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "missing required field volume_capabilities")
	}

	client, err := volumedClient(ctx)
	if err != nil {
		return nil, err
	}

	lv, err := client.GetVolume(ctx, pb.ByUUID(req.GetVolumeId()))
	switch status.Code(err) {
	case codes.OK:
	case codes.NotFound, codes.InvalidArgument:
		return nil, status.Errorf(codes.NotFound, "volume %s not found: %s", req.GetVolumeId(), status.Convert(err).Message())
	default:
		return nil, err
	}

	return &csi.ValidateVolumeCapabilitiesResponse{
		Confirmed: &csi.ValidateVolumeCapabilitiesResponse_Confirmed{
			VolumeContext:      map[string]string{VolumeContextName: displayName(lv)},
			VolumeCapabilities: confirmedCapabilities,
		},
	}, nil
}

func (c *Controller) ControllerGetCapabilities(ctx context.Context, _ *csi.ControllerGetCapabilitiesRequest) (*csi.ControllerGetCapabilitiesResponse, error) {
	return &csi.ControllerGetCapabilitiesResponse{Capabilities: controllerCapabilities}, nil
}

func (c *Controller) toVolume(lv *pb.LogicalVolume) *csi.Volume {
	return &csi.Volume{
		VolumeId:           lv.GetUuid(),
		CapacityBytes:      int64(lv.GetCapacityBytes()),
		VolumeContext:      map[string]string{VolumeContextName: displayName(lv)},
		AccessibleTopology: []*csi.Topology{Topology(c.nodeID)},
	}
}

// requestedCapacity resolves a capacity range to the size to provision and
// the optional upper limit (0 when unset).
func requestedCapacity(r *csi.CapacityRange) (capacity, limit int64, err error) {
	required, limit := r.GetRequiredBytes(), r.GetLimitBytes()
	if required < 0 {
		return 0, 0, status.Errorf(codes.InvalidArgument, "required_bytes must not be negative: %d", required)
	}
	if limit < 0 {
		return 0, 0, status.Errorf(codes.InvalidArgument, "limit_bytes must not be negative: %d", limit)
	}

	capacity = required
	if capacity == 0 {
		capacity = MinVolumeSizeBytes
	}
	if capacity < MinVolumeSizeBytes {
		return 0, 0, status.Errorf(codes.OutOfRange,
			"cannot create a volume smaller than the smallest allowed size: %d < %d", capacity, MinVolumeSizeBytes)
	}
	if limit > 0 && limit < capacity {
		return 0, 0, status.Errorf(codes.OutOfRange,
			"limit_bytes %d is below the volume size %d", limit, capacity)
	}
	return capacity, limit, nil
}

// roundToExtent rounds n up to a whole number of extents, the unit LVM
// allocates in.
func roundToExtent(n, extent uint64) uint64 {
	if extent == 0 {
		return n
	}
	return (n + extent - 1) / extent * extent
}
