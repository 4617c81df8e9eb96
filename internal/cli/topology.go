package cli

import (
	"fmt"
	"strconv"

	"github.com/nixpig/hostos/bitmap"
	"github.com/nixpig/hostos/topology"
	"github.com/spf13/cobra"
)

func cpusCmd() *cobra.Command {
	cpus := &cobra.Command{
		Use:     "cpus",
		Short:   "List online CPUs",
		Args:    cobra.NoArgs,
		Example: "  hostos cpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBitmap(cmd, "online cpus", topology.OnlineCPUs())
		},
	}

	return cpus
}

func nodesCmd() *cobra.Command {
	nodes := &cobra.Command{
		Use:     "nodes",
		Short:   "List online NUMA nodes",
		Args:    cobra.NoArgs,
		Example: "  hostos nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBitmap(cmd, "online nodes", topology.OnlineNodes())
		},
	}

	return nodes
}

func nodeCPUsCmd() *cobra.Command {
	nodeCPUs := &cobra.Command{
		Use:     "node-cpus [flags] NODE",
		Short:   "List CPUs belonging to a NUMA node",
		Args:    cobra.ExactArgs(1),
		Example: "  hostos node-cpus 0",
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse node index (%s): %w", args[0], err)
			}

			return printBitmap(
				cmd,
				fmt.Sprintf("cpus on node %d", node),
				topology.NodeCPUs(node),
			)
		},
	}

	return nodeCPUs
}

func memoryNodesCmd() *cobra.Command {
	memoryNodes := &cobra.Command{
		Use:     "memory-nodes",
		Short:   "List NUMA nodes with directly attached memory",
		Args:    cobra.NoArgs,
		Example: "  hostos memory-nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBitmap(
				cmd, "nodes with memory", topology.CPUsWithMemory(),
			)
		},
	}

	return memoryNodes
}

func affinityCmd() *cobra.Command {
	affinity := &cobra.Command{
		Use:     "affinity",
		Short:   "Show the CPU affinity of the calling thread",
		Args:    cobra.NoArgs,
		Example: "  hostos affinity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBitmap(
				cmd, "thread affinity", topology.ThreadAffinity(),
			)
		},
	}

	return affinity
}

func cgroupCPUsCmd() *cobra.Command {
	cgroupCPUs := &cobra.Command{
		Use:     "cgroup-cpus",
		Short:   "List the effective cpuset of the current cgroup",
		Args:    cobra.NoArgs,
		Example: "  hostos cgroup-cpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBitmap(cmd, "cgroup cpus", topology.CgroupCPUs())
		},
	}

	return cgroupCPUs
}

func coreIDCmd() *cobra.Command {
	coreID := &cobra.Command{
		Use:     "core-id [flags] CPU",
		Short:   "Show the physical core id of a logical CPU",
		Args:    cobra.ExactArgs(1),
		Example: "  hostos core-id 3",
		RunE: func(cmd *cobra.Command, args []string) error {
			cpu, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse cpu index (%s): %w", args[0], err)
			}

			id := topology.PhysCoreID(cpu)
			if id < 0 {
				return fmt.Errorf("core id for cpu %d: not available", cpu)
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)

			return nil
		},
	}

	return coreID
}

func printBitmap(cmd *cobra.Command, what string, b *bitmap.Bitmap) error {
	if b == nil {
		return fmt.Errorf("%s: not available", what)
	}

	fmt.Fprintln(cmd.OutOrStdout(), b.String())

	return nil
}
