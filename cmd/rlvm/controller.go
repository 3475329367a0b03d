package main

import (
	"context"
	"fmt"

	"github.com/container-storage-interface/spec/lib/go/csi"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	volumedpb "github.com/cuemby/rlvm/api/volumed"
	"github.com/cuemby/rlvm/pkg/api"
	"github.com/cuemby/rlvm/pkg/client"
	"github.com/cuemby/rlvm/pkg/driver"
	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/metrics"
)

var controllerCmd = &cobra.Command{
	Use:   "controller",
	Short: "Run the CSI controller plugin",
	Long: `Run the CSI identity and controller services.

Volume group operations are delegated to volumed over --volumed-socket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		socketPath, _ := cmd.Flags().GetString("socket-path")
		volumedSocket, _ := cmd.Flags().GetString("volumed-socket")
		nodeID, err := nodeIDFlag(cmd)
		if err != nil {
			return err
		}

		c, err := client.NewClient(volumedSocket)
		if err != nil {
			return fmt.Errorf("failed to create volumed client: %w", err)
		}
		defer c.Close()
		vc := c.Volumed()

		withClient := func(ctx context.Context) context.Context {
			return volumedpb.NewContext(ctx, vc)
		}

		srv := api.NewServer(socketPath, func(ctx context.Context) (context.Context, error) {
			return withClient(ctx), nil
		})
		verifier := driver.ControllerVerifier()
		csi.RegisterIdentityServer(srv.GRPCServer(), driver.NewIdentity(Version, verifier))
		csi.RegisterControllerServer(srv.GRPCServer(), driver.NewController(nodeID))

		metrics.SetCriticalComponents(metrics.ComponentGRPC, metrics.ComponentAuthority)

		logger := log.WithNodeID(nodeID)
		logger.Info().
			Str("socket", socketPath).
			Str("volumed", c.Target()).
			Msg("Starting rlvm controller")

		return serve(cmd, srv, func(ctx context.Context) error {
			return verifier.Verify(withClient(ctx))
		})
	},
}

func init() {
	controllerCmd.Flags().String("socket-path", "/run/rlvm/controller.sock", "Path to the listening socket")
	controllerCmd.Flags().String("node-id", uuid.NewString(), "Unique ID for this node")
	controllerCmd.Flags().String("volumed-socket", "/run/volumed/volumed.sock", "Path to the volumed socket")
}
