package driver

import (
	"context"

	"github.com/container-storage-interface/spec/lib/go/csi"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/cuemby/rlvm/api/volumed"
	"github.com/cuemby/rlvm/pkg/log"
)

// Verifier decides whether a plugin process is ready to serve.
type Verifier interface {
	Verify(ctx context.Context) error
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context) error

func (f VerifierFunc) Verify(ctx context.Context) error {
	return f(ctx)
}

// ControllerVerifier reports ready once volumed answers a free space query.
func ControllerVerifier() Verifier {
	return VerifierFunc(func(ctx context.Context) error {
		client, err := volumedClient(ctx)
		if err != nil {
			return err
		}
		_, err = client.GetFreeBytes(ctx, &volumed.Empty{})
		return err
	})
}

// NodeVerifier always reports ready.
func NodeVerifier() Verifier {
	return VerifierFunc(func(context.Context) error { return nil })
}

var pluginCapabilities = []*csi.PluginCapability{
	{
		Type: &csi.PluginCapability_Service_{
			Service: &csi.PluginCapability_Service{
				Type: csi.PluginCapability_Service_CONTROLLER_SERVICE,
			},
		},
	},
	{
		Type: &csi.PluginCapability_Service_{
			Service: &csi.PluginCapability_Service{
				Type: csi.PluginCapability_Service_VOLUME_ACCESSIBILITY_CONSTRAINTS,
			},
		},
	},
}

// Identity implements the CSI identity service
type Identity struct {
	csi.UnimplementedIdentityServer

	version  string
	verifier Verifier
	logger   zerolog.Logger
}

var _ csi.IdentityServer = (*Identity)(nil)

// NewIdentity creates an identity service reporting version.
func NewIdentity(version string, verifier Verifier) *Identity {
	return &Identity{
		version:  version,
		verifier: verifier,
		logger:   log.WithComponent("identity"),
	}
}

func (i *Identity) GetPluginInfo(ctx context.Context, _ *csi.GetPluginInfoRequest) (*csi.GetPluginInfoResponse, error) {
	return &csi.GetPluginInfoResponse{
		Name:          PluginName,
		VendorVersion: i.version,
	}, nil
}

func (i *Identity) GetPluginCapabilities(ctx context.Context, _ *csi.GetPluginCapabilitiesRequest) (*csi.GetPluginCapabilitiesResponse, error) {
	return &csi.GetPluginCapabilitiesResponse{Capabilities: pluginCapabilities}, nil
}

// Probe runs the verifier. A failed verification is reported as not ready
// rather than as an RPC error.
func (i *Identity) Probe(ctx context.Context, _ *csi.ProbeRequest) (*csi.ProbeResponse, error) {
	if err := i.verifier.Verify(ctx); err != nil {
		i.logger.Warn().Err(err).Msg("Probe failed")
		return &csi.ProbeResponse{Ready: wrapperspb.Bool(false)}, nil
	}
	return &csi.ProbeResponse{Ready: wrapperspb.Bool(true)}, nil
}
