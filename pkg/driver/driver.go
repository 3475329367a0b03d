package driver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/container-storage-interface/spec/lib/go/csi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cuemby/rlvm/api/mountd"
	"github.com/cuemby/rlvm/api/volumed"
	"github.com/cuemby/rlvm/pkg/resource"
)

const (
	// PluginName is the CSI driver name reported by GetPluginInfo.
	PluginName = "org.github.rlvm"

	// MinVolumeSizeBytes is the smallest volume the controller provisions.
	// It is also the size used when a request carries no capacity.
	MinVolumeSizeBytes int64 = 512 << 20

	// TopologyKey is the single topology segment rlvm reports.
	TopologyKey = "host"

	// VolumeContextName carries the caller-supplied volume name.
	VolumeContextName = "name"

	nameTagPrefix = "name="
	safeNameLen   = 32
)

// Topology returns the accessible topology of the host identified by nodeID.
func Topology(nodeID string) *csi.Topology {
	return &csi.Topology{Segments: map[string]string{TopologyKey: nodeID}}
}

// SafeName derives the logical volume name for a caller-supplied volume name.
// Orchestrator names may contain characters LVM rejects, so volumes are named
// by a hex digest prefix instead.
func SafeName(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])[:safeNameLen]
}

// nameTag records a caller-supplied volume name as an LVM tag. Names longer
// than a tag can hold are cut short.
func nameTag(name string) string {
	return nameTagPrefix + resource.EscapeTagValue(name, resource.MaxTagLength-len(nameTagPrefix))
}

// displayName returns the caller-supplied name recorded in the volume's tags,
// falling back to the logical volume name.
func displayName(lv *volumed.LogicalVolume) string {
	for _, tag := range lv.GetTags() {
		encoded, ok := strings.CutPrefix(tag, nameTagPrefix)
		if !ok {
			continue
		}
		if name, err := resource.UnescapeTagValue(encoded); err == nil {
			return name
		}
		return encoded
	}
	return lv.GetName()
}

func volumedClient(ctx context.Context) (volumed.VolumeServiceClient, error) {
	client, ok := volumed.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "no volumed client attached to request")
	}
	return client, nil
}

func mountdClient(ctx context.Context) (mountd.MountServiceClient, error) {
	client, ok := mountd.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "no mountd client attached to request")
	}
	return client, nil
}

func isMultiNode(mode csi.VolumeCapability_AccessMode_Mode) bool {
	switch mode {
	case csi.VolumeCapability_AccessMode_MULTI_NODE_READER_ONLY,
		csi.VolumeCapability_AccessMode_MULTI_NODE_SINGLE_WRITER,
		csi.VolumeCapability_AccessMode_MULTI_NODE_MULTI_WRITER:
		return true
	}
	return false
}

func isReadOnly(capability *csi.VolumeCapability) bool {
	return capability.GetAccessMode().GetMode() == csi.VolumeCapability_AccessMode_SINGLE_NODE_READER_ONLY
}
