// Package mountd holds the private gRPC contract between the Node plugin and
// the privileged mount authority. The message and service code is generated
// from mountd.proto; this file carries the hand-written helpers.
package mountd

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative -I ../.. api/mountd/mountd.proto

import (
	"context"
	"slices"
)

// HasFlag reports whether flag was requested.
func (x *MountRequest) HasFlag(flag MountFlag) bool {
	return slices.Contains(x.GetFlags(), flag)
}

type clientKey struct{}

// NewContext returns a copy of ctx carrying client.
func NewContext(ctx context.Context, client MountServiceClient) context.Context {
	return context.WithValue(ctx, clientKey{}, client)
}

// FromContext returns the client attached by NewContext, if any.
func FromContext(ctx context.Context) (MountServiceClient, bool) {
	client, ok := ctx.Value(clientKey{}).(MountServiceClient)
	return client, ok
}
