package cli

import (
	"fmt"

	"github.com/nixpig/hostos/internal/logging"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hostos",
		Short:        "Inspect host OS primitives.",
		Long:         "Inspect the host OS primitives exposed by the hostos library: CPU and NUMA topology, thread affinity, and process path resolution.",
		Example:      "",
		Version:      "0.0.1",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logfile, _ := cmd.Flags().GetString("log")
			debug, _ := cmd.Flags().GetBool("debug")

			if logfile != "" {
				logger, err := logging.NewLogger(logfile, debug)
				if err != nil {
					return fmt.Errorf("initialise logging: %w", err)
				}

				cmd.Root().SetErr(logging.NewErrorWriter(logger))
			}

			return nil
		},
	}

	cmd.AddCommand(
		cpusCmd(),
		nodesCmd(),
		nodeCPUsCmd(),
		memoryNodesCmd(),
		affinityCmd(),
		cgroupCPUsCmd(),
		coreIDCmd(),
		execPathCmd(),
		infoCmd(),
	)

	cmd.PersistentFlags().StringP(
		"log",
		"l",
		"",
		"Destination to write error logs (default is stderr)",
	)

	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	cmd.CompletionOptions.HiddenDefaultCmd = true

	return cmd
}
