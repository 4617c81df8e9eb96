//go:build linux

package topology

import (
	"strings"

	"github.com/containerd/cgroups/v3"
	"golang.org/x/sys/unix"

	"github.com/nixpig/hostos/bitmap"
	"github.com/nixpig/hostos/fsio"
	"github.com/nixpig/hostos/sysfs"
)

// OnlineCPUs returns the set of online logical CPUs.
func OnlineCPUs() *bitmap.Bitmap {
	return sysfs.ReadBitmap("/sys/devices/system/cpu/online")
}

// OnlineNodes returns the set of online NUMA nodes.
func OnlineNodes() *bitmap.Bitmap {
	return sysfs.ReadBitmap("/sys/devices/system/node/online")
}

// NodeCPUs returns the set of CPUs belonging to the given NUMA node.
func NodeCPUs(node int) *bitmap.Bitmap {
	return sysfs.ReadBitmap("/sys/devices/system/node/node%d/cpulist", node)
}

// CPUsWithMemory returns the set of nodes with directly attached memory.
func CPUsWithMemory() *bitmap.Bitmap {
	return sysfs.ReadBitmap("/sys/devices/system/node/has_memory")
}

// cpuSetBits matches the kernel's CPU_SETSIZE.
const cpuSetBits = 1024

// ThreadAffinity returns the CPU affinity mask of the calling thread, or
// nil if the affinity query fails.
func ThreadAffinity() *bitmap.Bitmap {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil
	}

	affinity := bitmap.New()
	for cpu := 0; cpu < cpuSetBits; cpu++ {
		if set.IsSet(cpu) {
			affinity.Set(cpu)
		}
	}

	return affinity
}

// PhysCoreID returns the physical core id of the given logical CPU, or -1
// if the topology source is missing or unparsable.
func PhysCoreID(cpu int) int {
	id, err := sysfs.ReadInt(
		"/sys/devices/system/cpu/cpu%d/topology/core_id", cpu,
	)
	if err != nil {
		return -1
	}

	return id
}

// CgroupCPUs returns the effective cpuset of the calling process's
// cgroup.
func CgroupCPUs() *bitmap.Bitmap {
	if cgroups.Mode() != cgroups.Unified {
		return sysfs.ReadBitmap("/sys/fs/cgroup/cpuset/cpuset.effective_cpus")
	}

	if path := selfCgroupPath(); path != "" {
		if b := sysfs.ReadBitmap(
			"/sys/fs/cgroup%s/cpuset.cpus.effective", path,
		); b != nil {
			return b
		}
	}

	return sysfs.ReadBitmap("/sys/fs/cgroup/cpuset.cpus.effective")
}

// selfCgroupPath returns the calling process's cgroup v2 path, or ""
// when it cannot be determined.
func selfCgroupPath() string {
	contents, err := fsio.ReadStreaming("/proc/self/cgroup")
	if err != nil {
		return ""
	}

	for line := range strings.Lines(string(contents)) {
		// v2 entries look like "0::/user.slice/..."
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "0::"); ok {
			return rest
		}
	}

	return ""
}
