package main

import (
	"context"
	"fmt"

	"github.com/container-storage-interface/spec/lib/go/csi"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mountdpb "github.com/cuemby/rlvm/api/mountd"
	"github.com/cuemby/rlvm/pkg/api"
	"github.com/cuemby/rlvm/pkg/client"
	"github.com/cuemby/rlvm/pkg/driver"
	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/mountd"
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Run the CSI node plugin",
	Long: `Run the CSI identity and node services.

Mount operations are delegated to mountd over --mountd-socket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		socketPath, _ := cmd.Flags().GetString("socket-path")
		mountdSocket, _ := cmd.Flags().GetString("mountd-socket")
		nodeID, err := nodeIDFlag(cmd)
		if err != nil {
			return err
		}

		c, err := client.NewClient(mountdSocket)
		if err != nil {
			return fmt.Errorf("failed to create mountd client: %w", err)
		}
		defer c.Close()
		mc := c.Mountd()

		srv := api.NewServer(socketPath, func(ctx context.Context) (context.Context, error) {
			return mountdpb.NewContext(ctx, mc), nil
		})
		verifier := driver.NodeVerifier()
		csi.RegisterIdentityServer(srv.GRPCServer(), driver.NewIdentity(Version, verifier))
		csi.RegisterNodeServer(srv.GRPCServer(), driver.NewNode(nodeID, mountd.HostMountTable{}))

		logger := log.WithNodeID(nodeID)
		logger.Info().
			Str("socket", socketPath).
			Str("mountd", c.Target()).
			Msg("Starting rlvm node")

		return serve(cmd, srv, verifier.Verify)
	},
}

func init() {
	nodeCmd.Flags().String("socket-path", "/run/rlvm/node.sock", "Path to the listening socket")
	nodeCmd.Flags().String("node-id", uuid.NewString(), "Unique ID for this node")
	nodeCmd.Flags().String("mountd-socket", "/run/mountd/mountd.sock", "Path to the mountd socket")
}
