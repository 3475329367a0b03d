package driver

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/container-storage-interface/spec/lib/go/csi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/cuemby/rlvm/api/volumed"
	"github.com/cuemby/rlvm/pkg/lvm"
)

var mountCapability = &csi.VolumeCapability{
	AccessMode: &csi.VolumeCapability_AccessMode{Mode: csi.VolumeCapability_AccessMode_SINGLE_NODE_WRITER},
	AccessType: &csi.VolumeCapability_Mount{Mount: &csi.VolumeCapability_MountVolume{FsType: "xfs"}},
}

func createRequest(name string, required, limit int64) *csi.CreateVolumeRequest {
	req := &csi.CreateVolumeRequest{
		Name:               name,
		VolumeCapabilities: []*csi.VolumeCapability{mountCapability},
	}
	if required != 0 || limit != 0 {
		req.CapacityRange = &csi.CapacityRange{RequiredBytes: required, LimitBytes: limit}
	}
	return req
}

func TestSafeName(t *testing.T) {
	a := SafeName("pvc-0b7c6a1e")
	assert.Len(t, a, 32)
	assert.Equal(t, a, SafeName("pvc-0b7c6a1e"), "stable across calls")
	assert.NotEqual(t, a, SafeName("pvc-0b7c6a1f"))
	assert.Regexp(t, "^[0-9a-f]{32}$", SafeName("name with spaces/and/slashes"))
}

func TestRequestedCapacity(t *testing.T) {
	tests := []struct {
		name      string
		r         *csi.CapacityRange
		wantBytes int64
		wantCode  codes.Code
	}{
		{name: "unset defaults to minimum", r: nil, wantBytes: MinVolumeSizeBytes},
		{name: "zero defaults to minimum", r: &csi.CapacityRange{}, wantBytes: MinVolumeSizeBytes},
		{name: "exactly minimum", r: &csi.CapacityRange{RequiredBytes: MinVolumeSizeBytes}, wantBytes: MinVolumeSizeBytes},
		{name: "above minimum", r: &csi.CapacityRange{RequiredBytes: gib}, wantBytes: gib},
		{name: "limit above required", r: &csi.CapacityRange{RequiredBytes: gib, LimitBytes: 2 * gib}, wantBytes: gib},
		{name: "below minimum", r: &csi.CapacityRange{RequiredBytes: MinVolumeSizeBytes - 1}, wantCode: codes.OutOfRange},
		{name: "limit below required", r: &csi.CapacityRange{RequiredBytes: gib, LimitBytes: gib - 1}, wantCode: codes.OutOfRange},
		{name: "limit below default", r: &csi.CapacityRange{LimitBytes: 100 * mib}, wantCode: codes.OutOfRange},
		{name: "negative required", r: &csi.CapacityRange{RequiredBytes: -1}, wantCode: codes.InvalidArgument},
		{name: "negative limit", r: &csi.CapacityRange{RequiredBytes: gib, LimitBytes: -1}, wantCode: codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := requestedCapacity(tt.r)
			require.Equal(t, tt.wantCode, status.Code(err), "err: %v", err)
			if tt.wantCode == codes.OK {
				assert.Equal(t, tt.wantBytes, got)
			}
		})
	}
}

func TestCreateVolume(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	resp, err := c.CreateVolume(v.ctx(), createRequest("pvc-1", gib, 0))
	require.NoError(t, err)

	vol := resp.GetVolume()
	assert.NotEmpty(t, vol.GetVolumeId())
	assert.Equal(t, gib, vol.GetCapacityBytes())
	assert.Equal(t, map[string]string{"name": "pvc-1"}, vol.GetVolumeContext())
	require.Len(t, vol.GetAccessibleTopology(), 1)
	assert.Equal(t, map[string]string{"host": testNodeID}, vol.GetAccessibleTopology()[0].GetSegments())

	lv, err := v.client.GetVolume(context.Background(), pb.ByUUID(vol.GetVolumeId()))
	require.NoError(t, err)
	assert.Equal(t, SafeName("pvc-1"), lv.GetName())
	assert.Equal(t, []string{"name=pvc-1"}, lv.GetTags())
	assert.Equal(t, []string{"/dev/vg0/" + SafeName("pvc-1")}, v.formatter.Formatted())
}

func TestCreateVolume_Idempotent(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	first, err := c.CreateVolume(v.ctx(), createRequest("pvc-1", gib, 0))
	require.NoError(t, err)
	second, err := c.CreateVolume(v.ctx(), createRequest("pvc-1", gib, 0))
	require.NoError(t, err)

	assert.Equal(t, first.GetVolume().GetVolumeId(), second.GetVolume().GetVolumeId())

	list, err := v.client.ListVolumes(context.Background(), &pb.Empty{})
	require.NoError(t, err)
	assert.Len(t, list.GetVolumes(), 1)
}

func TestCreateVolume_RetryOfExtentRoundedVolume(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	// 600 MiB + 1 byte is rounded up to the next 4 MiB extent.
	required := 600*mib + 1

	first, err := c.CreateVolume(v.ctx(), createRequest("pvc-odd", required, 0))
	require.NoError(t, err)
	assert.Equal(t, 604*mib, first.GetVolume().GetCapacityBytes())

	second, err := c.CreateVolume(v.ctx(), createRequest("pvc-odd", required, 0))
	require.NoError(t, err)
	assert.Equal(t, first.GetVolume().GetVolumeId(), second.GetVolume().GetVolumeId())
}

func TestCreateVolume_ExistingWithDifferentCapacity(t *testing.T) {
	tests := []struct {
		name     string
		required int64
		limit    int64
	}{
		{name: "larger request", required: 2 * gib},
		{name: "smaller request", required: 768 * mib},
		{name: "smaller by less than an extent", required: gib - 4*mib},
		{name: "existing exceeds limit", required: 512 * mib, limit: 512 * mib},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVolumed(t, uint64(10*gib), 0)
			c := NewController(testNodeID)

			_, err := c.CreateVolume(v.ctx(), createRequest("pvc-1", gib, 0))
			require.NoError(t, err)

			_, err = c.CreateVolume(v.ctx(), createRequest("pvc-1", tt.required, tt.limit))
			assert.Equal(t, codes.AlreadyExists, status.Code(err))
		})
	}
}

func TestCreateVolume_ExtentRoundingAboveLimit(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	// 600 MiB + 1 byte allocates 604 MiB, which the limit does not allow.
	_, err := c.CreateVolume(v.ctx(), createRequest("pvc-tight", 600*mib+1, 602*mib))
	assert.Equal(t, codes.OutOfRange, status.Code(err))

	list, err := v.client.ListVolumes(context.Background(), &pb.Empty{})
	require.NoError(t, err)
	assert.Empty(t, list.GetVolumes())
}

func TestCreateVolume_CapacityBounds(t *testing.T) {
	tests := []struct {
		name     string
		required int64
		wantCode codes.Code
	}{
		{name: "below minimum", required: 256 * mib, wantCode: codes.OutOfRange},
		{name: "above free", required: 4*gib + 4*mib, wantCode: codes.OutOfRange},
		{name: "exactly free", required: 4 * gib, wantCode: codes.OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVolumed(t, uint64(5*gib), uint64(gib))
			c := NewController(testNodeID)

			_, err := c.CreateVolume(v.ctx(), createRequest("pvc-bounds", tt.required, 0))
			assert.Equal(t, tt.wantCode, status.Code(err), "err: %v", err)
		})
	}
}

func TestCreateVolume_ExistingIgnoresFreeSpace(t *testing.T) {
	v := newVolumed(t, uint64(2*gib), 0)
	c := NewController(testNodeID)

	_, err := c.CreateVolume(v.ctx(), createRequest("pvc-full", 2*gib, 0))
	require.NoError(t, err)

	// The group is now full, but the retry finds the existing volume first.
	_, err = c.CreateVolume(v.ctx(), createRequest("pvc-full", 2*gib, 0))
	assert.NoError(t, err)
}

func TestCreateVolume_InvalidArguments(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	_, err := c.CreateVolume(v.ctx(), &csi.CreateVolumeRequest{VolumeCapabilities: []*csi.VolumeCapability{mountCapability}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.CreateVolume(v.ctx(), &csi.CreateVolumeRequest{Name: "pvc-1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.CreateVolume(context.Background(), createRequest("pvc-1", gib, 0))
	assert.Equal(t, codes.Internal, status.Code(err), "no volumed client on the context")
}

func TestCreateVolume_NameTagRoundTrips(t *testing.T) {
	names := []string{
		"my volume",
		"my_volume",
		"ns/pvc?x=1&y=2",
		"données",
	}

	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	for _, name := range names {
		resp, err := c.CreateVolume(v.ctx(), createRequest(name, MinVolumeSizeBytes, 0))
		require.NoError(t, err, name)
		assert.Equal(t, name, resp.GetVolume().GetVolumeContext()[VolumeContextName])

		validated, err := c.ValidateVolumeCapabilities(v.ctx(), &csi.ValidateVolumeCapabilitiesRequest{
			VolumeId:           resp.GetVolume().GetVolumeId(),
			VolumeCapabilities: []*csi.VolumeCapability{mountCapability},
		})
		require.NoError(t, err)
		assert.Equal(t, name, validated.GetConfirmed().GetVolumeContext()[VolumeContextName],
			"names that differ only in unsupported characters stay distinct")
	}
}

func TestCreateVolume_LongNameFitsInTag(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	name := strings.Repeat("a b", 400)
	resp, err := c.CreateVolume(v.ctx(), createRequest(name, gib, 0))
	require.NoError(t, err)
	assert.Equal(t, name, resp.GetVolume().GetVolumeContext()[VolumeContextName])

	lv, err := v.client.GetVolume(context.Background(), pb.ByUUID(resp.GetVolume().GetVolumeId()))
	require.NoError(t, err)
	require.Len(t, lv.GetTags(), 1)
	assert.LessOrEqual(t, len(lv.GetTags()[0]), 1024)
	assert.True(t, strings.HasPrefix(name, displayName(lv)), "a cut tag still decodes to a prefix of the name")
}

func TestCreateVolume_RetriesAfterTransientConflict(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	v.manager.CreateErr = fmt.Errorf("lvcreate: %w", lvm.ErrAlreadyExists)

	resp, err := c.CreateVolume(v.ctx(), createRequest("pvc-1", gib, 0))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetVolume().GetVolumeId())
}

// racingClient creates the volume on behalf of a concurrent caller, then
// reports the conflict the loser would see.
type racingClient struct {
	pb.VolumeServiceClient
	raced bool
}

func (r *racingClient) CreateVolume(ctx context.Context, in *pb.CreateVolumeRequest, opts ...grpc.CallOption) (*pb.LogicalVolume, error) {
	if !r.raced {
		r.raced = true
		if _, err := r.VolumeServiceClient.CreateVolume(ctx, in, opts...); err != nil {
			return nil, err
		}
		return nil, status.Error(codes.AlreadyExists, "logical volume already exists")
	}
	return r.VolumeServiceClient.CreateVolume(ctx, in, opts...)
}

func TestCreateVolume_LostRaceReusesWinner(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)
	racer := &racingClient{VolumeServiceClient: v.client}

	resp, err := c.CreateVolume(pb.NewContext(context.Background(), racer), createRequest("pvc-race", gib, 0))
	require.NoError(t, err)
	assert.True(t, racer.raced)

	lv, err := v.client.GetVolume(context.Background(), pb.ByName(SafeName("pvc-race")))
	require.NoError(t, err)
	assert.Equal(t, lv.GetUuid(), resp.GetVolume().GetVolumeId())
}

func TestCreateVolume_FormatFailure(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)
	v.formatter.Err = fmt.Errorf("mkfs.xfs: device busy")

	_, err := c.CreateVolume(v.ctx(), createRequest("pvc-1", gib, 0))
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestDeleteVolume(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	resp, err := c.CreateVolume(v.ctx(), createRequest("pvc-1", gib, 0))
	require.NoError(t, err)
	id := resp.GetVolume().GetVolumeId()

	_, err = c.DeleteVolume(v.ctx(), &csi.DeleteVolumeRequest{VolumeId: id})
	require.NoError(t, err)

	_, err = v.client.GetVolume(context.Background(), pb.ByUUID(id))
	assert.Equal(t, codes.NotFound, status.Code(err))

	t.Run("repeat delete succeeds", func(t *testing.T) {
		_, err := c.DeleteVolume(v.ctx(), &csi.DeleteVolumeRequest{VolumeId: id})
		assert.NoError(t, err)
	})

	t.Run("malformed id succeeds", func(t *testing.T) {
		_, err := c.DeleteVolume(v.ctx(), &csi.DeleteVolumeRequest{VolumeId: "not-an-lvm-uuid"})
		assert.NoError(t, err)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := c.DeleteVolume(v.ctx(), &csi.DeleteVolumeRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("authority failure propagates", func(t *testing.T) {
		v.manager.VolumeGroupErr = fmt.Errorf("vgs: exit status 5")
		defer func() { v.manager.VolumeGroupErr = nil }()

		_, err := c.DeleteVolume(v.ctx(), &csi.DeleteVolumeRequest{VolumeId: id})
		assert.Equal(t, codes.Internal, status.Code(err))
	})
}

func TestListVolumes(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	var ids []string
	for i := range 5 {
		resp, err := c.CreateVolume(v.ctx(), createRequest("pvc-"+strconv.Itoa(i), gib, 0))
		require.NoError(t, err)
		ids = append(ids, resp.GetVolume().GetVolumeId())
	}

	tests := []struct {
		name      string
		max       int32
		token     string
		wantIDs   []string
		wantToken string
		wantCode  codes.Code
	}{
		{name: "all", wantIDs: ids},
		{name: "first page", max: 2, wantIDs: ids[:2], wantToken: "2"},
		{name: "middle page", max: 2, token: "2", wantIDs: ids[2:4], wantToken: "4"},
		{name: "last page", max: 2, token: "4", wantIDs: ids[4:]},
		{name: "exact fit", max: 5, wantIDs: ids},
		{name: "token at end", token: "5", wantIDs: []string{}},
		{name: "token beyond end", token: "6", wantCode: codes.Aborted},
		{name: "non numeric token", token: "abc", wantCode: codes.Aborted},
		{name: "negative token", token: "-1", wantCode: codes.Aborted},
		{name: "negative max", max: -1, wantCode: codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.ListVolumes(v.ctx(), &csi.ListVolumesRequest{MaxEntries: tt.max, StartingToken: tt.token})
			require.Equal(t, tt.wantCode, status.Code(err), "err: %v", err)
			if tt.wantCode != codes.OK {
				return
			}

			got := make([]string, 0, len(resp.GetEntries()))
			for _, e := range resp.GetEntries() {
				got = append(got, e.GetVolume().GetVolumeId())
			}
			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, tt.wantToken, resp.GetNextToken())
		})
	}
}

func TestListVolumes_StartingTokenOffsetsPage(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	for i := range 3 {
		_, err := c.CreateVolume(v.ctx(), createRequest("pvc-"+strconv.Itoa(i), gib, 0))
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	token := ""
	for {
		resp, err := c.ListVolumes(v.ctx(), &csi.ListVolumesRequest{MaxEntries: 1, StartingToken: token})
		require.NoError(t, err)
		require.Len(t, resp.GetEntries(), 1)
		id := resp.GetEntries()[0].GetVolume().GetVolumeId()
		assert.False(t, seen[id], "volume %s returned twice", id)
		seen[id] = true

		token = resp.GetNextToken()
		if token == "" {
			break
		}
	}
	assert.Len(t, seen, 3)
}

// unavailableClient stands in for a volumed that cannot be reached.
type unavailableClient struct {
	pb.VolumeServiceClient
}

func (unavailableClient) ListVolumes(context.Context, *pb.Empty, ...grpc.CallOption) (*pb.ListVolumesResponse, error) {
	return nil, status.Error(codes.Unavailable, "connection refused")
}

func (unavailableClient) GetFreeBytes(context.Context, *pb.Empty, ...grpc.CallOption) (*pb.GetFreeBytesResponse, error) {
	return nil, status.Error(codes.Unavailable, "connection refused")
}

func TestController_AuthorityFailuresAreInternal(t *testing.T) {
	c := NewController(testNodeID)
	ctx := pb.NewContext(context.Background(), unavailableClient{})

	_, err := c.ListVolumes(ctx, &csi.ListVolumesRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "connection refused")

	_, err = c.GetCapacity(ctx, &csi.GetCapacityRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "connection refused")
}

func TestGetCapacity(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), uint64(gib))
	c := NewController(testNodeID)

	multi := &csi.VolumeCapability{
		AccessMode: &csi.VolumeCapability_AccessMode{Mode: csi.VolumeCapability_AccessMode_MULTI_NODE_MULTI_WRITER},
	}

	tests := []struct {
		name          string
		req           *csi.GetCapacityRequest
		wantAvailable int64
		wantMinimum   bool
	}{
		{
			name:          "no constraints",
			req:           &csi.GetCapacityRequest{},
			wantAvailable: 9 * gib,
			wantMinimum:   true,
		},
		{
			name:          "single node capability",
			req:           &csi.GetCapacityRequest{VolumeCapabilities: []*csi.VolumeCapability{mountCapability}},
			wantAvailable: 9 * gib,
			wantMinimum:   true,
		},
		{
			name: "multi node capability",
			req:  &csi.GetCapacityRequest{VolumeCapabilities: []*csi.VolumeCapability{mountCapability, multi}},
		},
		{
			name: "own topology",
			req:  &csi.GetCapacityRequest{AccessibleTopology: Topology(testNodeID)},
		},
		{
			name:          "other topology",
			req:           &csi.GetCapacityRequest{AccessibleTopology: Topology("other-host")},
			wantAvailable: 9 * gib,
			wantMinimum:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.GetCapacity(v.ctx(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, resp.GetAvailableCapacity())
			assert.Nil(t, resp.GetMaximumVolumeSize())
			if tt.wantMinimum {
				require.NotNil(t, resp.GetMinimumVolumeSize())
				assert.Equal(t, MinVolumeSizeBytes, resp.GetMinimumVolumeSize().GetValue())
			} else {
				assert.Nil(t, resp.GetMinimumVolumeSize())
			}
		})
	}
}

func TestValidateVolumeCapabilities_ConfirmsFixedPair(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)

	created, err := c.CreateVolume(v.ctx(), createRequest("pvc-1", gib, 0))
	require.NoError(t, err)

	resp, err := c.ValidateVolumeCapabilities(v.ctx(), &csi.ValidateVolumeCapabilitiesRequest{
		VolumeId:           created.GetVolume().GetVolumeId(),
		VolumeCapabilities: []*csi.VolumeCapability{mountCapability},
	})
	require.NoError(t, err)

	confirmed := resp.GetConfirmed()
	require.NotNil(t, confirmed)
	assert.Equal(t, map[string]string{"name": "pvc-1"}, confirmed.GetVolumeContext())
	require.Len(t, confirmed.GetVolumeCapabilities(), 2)
	assert.NotNil(t, confirmed.GetVolumeCapabilities()[0].GetBlock())
	assert.Equal(t, "xfs", confirmed.GetVolumeCapabilities()[1].GetMount().GetFsType())
	for _, vc := range confirmed.GetVolumeCapabilities() {
		assert.Equal(t, csi.VolumeCapability_AccessMode_SINGLE_NODE_WRITER, vc.GetAccessMode().GetMode())
	}
}

func TestValidateVolumeCapabilities_Errors(t *testing.T) {
	v := newVolumed(t, uint64(10*gib), 0)
	c := NewController(testNodeID)
	caps := []*csi.VolumeCapability{mountCapability}

	tests := []struct {
		name     string
		req      *csi.ValidateVolumeCapabilitiesRequest
		wantCode codes.Code
	}{
		{name: "missing id", req: &csi.ValidateVolumeCapabilitiesRequest{VolumeCapabilities: caps}, wantCode: codes.InvalidArgument},
		{name: "missing capabilities", req: &csi.ValidateVolumeCapabilitiesRequest{VolumeId: "x"}, wantCode: codes.InvalidArgument},
		{name: "malformed id", req: &csi.ValidateVolumeCapabilitiesRequest{VolumeId: "x", VolumeCapabilities: caps}, wantCode: codes.NotFound},
		{name: "unknown id", req: &csi.ValidateVolumeCapabilitiesRequest{VolumeId: "aaaaaa-bbbb-cccc-dddd-eeee-ffff-gggggg", VolumeCapabilities: caps}, wantCode: codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ValidateVolumeCapabilities(v.ctx(), tt.req)
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestControllerGetCapabilities(t *testing.T) {
	c := NewController(testNodeID)

	resp, err := c.ControllerGetCapabilities(context.Background(), &csi.ControllerGetCapabilitiesRequest{})
	require.NoError(t, err)

	var got []csi.ControllerServiceCapability_RPC_Type
	for _, capability := range resp.GetCapabilities() {
		got = append(got, capability.GetRpc().GetType())
	}
	assert.ElementsMatch(t, []csi.ControllerServiceCapability_RPC_Type{
		csi.ControllerServiceCapability_RPC_LIST_VOLUMES,
		csi.ControllerServiceCapability_RPC_CREATE_DELETE_VOLUME,
		csi.ControllerServiceCapability_RPC_GET_CAPACITY,
	}, got)
}

func TestController_UnimplementedRPCs(t *testing.T) {
	c := NewController(testNodeID)
	ctx := context.Background()

	_, err := c.ControllerPublishVolume(ctx, &csi.ControllerPublishVolumeRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	_, err = c.CreateSnapshot(ctx, &csi.CreateSnapshotRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	_, err = c.ControllerExpandVolume(ctx, &csi.ControllerExpandVolumeRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
