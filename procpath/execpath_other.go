//go:build !linux && !freebsd

package procpath

// ExecPath reports absence on platforms without a self-identification
// mechanism this package knows about.
func ExecPath() (string, bool) {
	return "", false
}
