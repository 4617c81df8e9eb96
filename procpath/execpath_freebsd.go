//go:build freebsd

package procpath

import (
	"strings"

	"golang.org/x/sys/unix"
)

// ExecPath returns the absolute path of the running executable via the
// kern.proc.pathname sysctl.
func ExecPath() (string, bool) {
	raw, err := unix.SysctlRaw("kern.proc.pathname", -1)
	if err != nil {
		return "", false
	}

	path := strings.TrimRight(string(raw), "\x00")
	if path == "" {
		return "", false
	}

	return path, true
}
