//go:build linux

package procpath

import "os"

// ExecPath returns the absolute path of the running executable, resolved
// through /proc/self/exe.
func ExecPath() (string, bool) {
	path, err := os.Readlink("/proc/self/exe")
	if err != nil {
		return "", false
	}

	return path, true
}
