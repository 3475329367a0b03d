package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	volumedpb "github.com/cuemby/rlvm/api/volumed"
	"github.com/cuemby/rlvm/pkg/api"
	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/lvm"
	"github.com/cuemby/rlvm/pkg/metrics"
	"github.com/cuemby/rlvm/pkg/resource"
	"github.com/cuemby/rlvm/pkg/volumed"
)

var volumedCmd = &cobra.Command{
	Use:   "volumed",
	Short: "Run the volume group authority",
	Long: `Run volumed, the privileged service that creates, formats and removes
logical volumes in a single LVM volume group.

The volume group and spare capacity are read from --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		socketPath, _ := cmd.Flags().GetString("socket-path")
		configPath, _ := cmd.Flags().GetString("config")
		interval, _ := cmd.Flags().GetDuration("collect-interval")

		cfg, err := volumed.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger := log.WithVolumeGroup(cfg.VolumeGroup)
		logger.Info().Uint64("spare_bytes", cfg.SpareBytes).Str("config", configPath).Msg("Loaded config")

		manager := lvm.NewManager(nil)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		vg, err := manager.VolumeGroup(ctx, resource.Name(cfg.VolumeGroup))
		cancel()
		if err != nil {
			return fmt.Errorf("could not find volume group %s: %w", cfg.VolumeGroup, err)
		}
		if err := cfg.Validate(vg); err != nil {
			return err
		}

		vs, err := volumed.NewServer(cfg, manager, lvm.NewXFSFormatter(nil))
		if err != nil {
			return err
		}

		srv := api.NewServer(socketPath, vs.InjectVolumeGroup)
		volumedpb.RegisterVolumeServiceServer(srv.GRPCServer(), vs)

		metrics.SetCriticalComponents(metrics.ComponentGRPC, metrics.ComponentAuthority)
		collector := metrics.NewCollector(vs, interval)
		collector.Start()
		defer collector.Stop()

		logger.Info().
			Str("socket", socketPath).
			Uint64("size_bytes", vg.SizeBytes).
			Uint64("free_bytes", vg.FreeBytes).
			Msg("Starting volumed")

		return serve(cmd, srv, nil)
	},
}

func init() {
	volumedCmd.Flags().String("socket-path", "/run/volumed/volumed.sock", "Path to the listening socket")
	volumedCmd.Flags().String("config", volumed.DefaultConfigPath, "Path to the config file")
	volumedCmd.Flags().Duration("collect-interval", 30*time.Second, "Interval between volume group metric samples")
}
