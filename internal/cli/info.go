package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nixpig/hostos/procpath"
	"github.com/nixpig/hostos/topology"
	"github.com/spf13/cobra"
)

type hostInfo struct {
	OnlineCPUs  []int            `json:"onlineCpus,omitempty"`
	OnlineNodes []int            `json:"onlineNodes,omitempty"`
	NodeCPUs    map[string][]int `json:"nodeCpus,omitempty"`
	MemoryNodes []int            `json:"memoryNodes,omitempty"`
	Affinity    []int            `json:"affinity,omitempty"`
	CgroupCPUs  []int            `json:"cgroupCpus,omitempty"`
	CoreIDs     map[string]int   `json:"coreIds,omitempty"`
	ExecPath    string           `json:"execPath,omitempty"`
}

func getHostInfo() *hostInfo {
	info := &hostInfo{}

	if cpus := topology.OnlineCPUs(); cpus != nil {
		info.OnlineCPUs = cpus.Slice()

		info.CoreIDs = make(map[string]int, cpus.Cardinality())
		for _, cpu := range info.OnlineCPUs {
			if id := topology.PhysCoreID(cpu); id >= 0 {
				info.CoreIDs[strconv.Itoa(cpu)] = id
			}
		}
	}

	if nodes := topology.OnlineNodes(); nodes != nil {
		info.OnlineNodes = nodes.Slice()

		info.NodeCPUs = make(map[string][]int, nodes.Cardinality())
		for _, node := range info.OnlineNodes {
			if cpus := topology.NodeCPUs(node); cpus != nil {
				info.NodeCPUs[strconv.Itoa(node)] = cpus.Slice()
			}
		}
	}

	if nodes := topology.CPUsWithMemory(); nodes != nil {
		info.MemoryNodes = nodes.Slice()
	}

	if affinity := topology.ThreadAffinity(); affinity != nil {
		info.Affinity = affinity.Slice()
	}

	if cpus := topology.CgroupCPUs(); cpus != nil {
		info.CgroupCPUs = cpus.Slice()
	}

	if path, ok := procpath.ExecPath(); ok {
		info.ExecPath = path
	}

	return info
}

func infoCmd() *cobra.Command {
	info := &cobra.Command{
		Use:     "info",
		Short:   "Dump a JSON snapshot of the host topology",
		Args:    cobra.NoArgs,
		Example: "  hostos info",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := json.Marshal(getHostInfo())
			if err != nil {
				return fmt.Errorf("info: %w", err)
			}

			var formattedInfo bytes.Buffer
			if err := json.Indent(
				&formattedInfo,
				info,
				"",
				"  ",
			); err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(
				formattedInfo.Bytes(),
			); err != nil {
				return fmt.Errorf("info: %w", err)
			}

			return nil
		},
	}

	return info
}
