// Package procpath resolves symlink targets and the running process's
// own executable path.
package procpath

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// ResolvedBasename resolves the symlink at the formatted path and returns
// the final component of its target. The second return value is false
// when the path is missing, is not a symlink, or resolves to a target
// longer than the platform path limit.
func ResolvedBasename(format string, args ...any) (string, bool) {
	target, err := os.Readlink(fmt.Sprintf(format, args...))
	if err != nil || target == "" || len(target) > unix.PathMax {
		return "", false
	}

	if i := strings.LastIndexByte(target, '/'); i >= 0 {
		target = target[i+1:]
	}

	if target == "" {
		return "", false
	}

	return target, true
}
