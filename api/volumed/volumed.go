// Package volumed holds the private gRPC contract between the Controller
// plugin and the privileged volume-group authority. The message and service
// code is generated from volumed.proto; this file carries the hand-written
// helpers that sit next to it.
package volumed

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative -I ../.. api/volumed/volumed.proto

import "context"

// ByName builds a lookup by logical volume name.
func ByName(name string) *GetVolumeRequest {
	return &GetVolumeRequest{Selector: &GetVolumeRequest_Name{Name: name}}
}

// ByUUID builds a lookup by logical volume UUID.
func ByUUID(uuid string) *GetVolumeRequest {
	return &GetVolumeRequest{Selector: &GetVolumeRequest_Uuid{Uuid: uuid}}
}

type clientKey struct{}

// NewContext returns a copy of ctx carrying client.
func NewContext(ctx context.Context, client VolumeServiceClient) context.Context {
	return context.WithValue(ctx, clientKey{}, client)
}

// FromContext returns the client attached by NewContext, if any.
func FromContext(ctx context.Context) (VolumeServiceClient, bool) {
	client, ok := ctx.Value(clientKey{}).(VolumeServiceClient)
	return client, ok
}
