package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/metrics"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rlvm",
	Short: "rlvm - host-local LVM volumes for CSI",
	Long: `rlvm provisions and mounts LVM logical volumes for container
orchestrators through the Container Storage Interface.

It runs as four cooperating services: the unprivileged CSI controller and
node plugins, and the privileged volumed and mountd authorities that
perform volume group and mount operations on their behalf.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("log-level")
		jsonOutput, _ := cmd.Flags().GetBool("log-json")

		level, err := log.ParseLevel(levelFlag)
		if err != nil {
			return err
		}
		log.Init(log.Config{Level: level, JSONOutput: jsonOutput})
		metrics.SetVersion(Version)
		return nil
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"rlvm version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Address for the /health, /ready and /metrics endpoint (disabled when empty)")

	rootCmd.AddCommand(controllerCmd)
	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(volumedCmd)
	rootCmd.AddCommand(mountdCmd)
}
