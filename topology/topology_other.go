//go:build !linux

package topology

import "github.com/nixpig/hostos/bitmap"

// The topology sources this package knows about are Linux-specific; on
// other platforms every query reports absence.

func OnlineCPUs() *bitmap.Bitmap { return nil }

func OnlineNodes() *bitmap.Bitmap { return nil }

func NodeCPUs(node int) *bitmap.Bitmap { return nil }

func CPUsWithMemory() *bitmap.Bitmap { return nil }

func ThreadAffinity() *bitmap.Bitmap { return nil }

func PhysCoreID(cpu int) int { return -1 }

func CgroupCPUs() *bitmap.Bitmap { return nil }
