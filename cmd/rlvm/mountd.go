package main

import (
	"github.com/spf13/cobra"

	mountdpb "github.com/cuemby/rlvm/api/mountd"
	"github.com/cuemby/rlvm/pkg/api"
	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/lvm"
	"github.com/cuemby/rlvm/pkg/mountd"
)

var mountdCmd = &cobra.Command{
	Use:   "mountd",
	Short: "Run the mount authority",
	Long: `Run mountd, the privileged service that mounts logical volumes and bind
mounts them into pods.

Only paths owned by the configured user and group, or matched by a whitelist
glob, may be mounted. The policy is read from --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		socketPath, _ := cmd.Flags().GetString("socket-path")
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := mountd.LoadConfig(configPath)
		if err != nil {
			return err
		}
		policy, err := cfg.Policy()
		if err != nil {
			return err
		}

		logger := log.WithComponent("mountd")
		logger.Info().
			Str("config", configPath).
			Str("owner", policy.Owner().String()).
			Strs("whitelist", cfg.Whitelist).
			Msg("Loaded config")

		ms := mountd.NewServer(
			policy,
			mountd.LVMResolver{Manager: lvm.NewManager(nil)},
			mountd.HostMounter{},
			mountd.HostMountTable{},
		)

		srv := api.NewServer(socketPath, nil)
		mountdpb.RegisterMountServiceServer(srv.GRPCServer(), ms)

		logger.Info().Str("socket", socketPath).Msg("Starting mountd")
		return serve(cmd, srv, nil)
	},
}

func init() {
	mountdCmd.Flags().String("socket-path", "/run/mountd/mountd.sock", "Path to the listening socket")
	mountdCmd.Flags().String("config", mountd.DefaultConfigPath, "Path to the config file")
}
