package client

import (
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cuemby/rlvm/api/mountd"
	"github.com/cuemby/rlvm/api/volumed"
)

// Client wraps a connection to one of the privileged authorities
type Client struct {
	conn   *grpc.ClientConn
	target string
}

// NewClient creates a client for the authority listening on socketPath.
// The connection is established lazily on the first call, so a missing
// authority surfaces as Unavailable on requests rather than here.
func NewClient(socketPath string, opts ...grpc.DialOption) (*Client, error) {
	if socketPath == "" {
		return nil, fmt.Errorf("socket path is required")
	}

	target := socketPath
	if !strings.Contains(target, "://") {
		target = "unix://" + target
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", target, err)
	}

	return &Client{conn: conn, target: target}, nil
}

// Target returns the resolved gRPC target
func (c *Client) Target() string {
	return c.target
}

// Volumed returns a volume-group authority client on this connection
func (c *Client) Volumed() volumed.VolumeServiceClient {
	return volumed.NewVolumeServiceClient(c.conn)
}

// Mountd returns a mount authority client on this connection
func (c *Client) Mountd() mountd.MountServiceClient {
	return mountd.NewMountServiceClient(c.conn)
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}
