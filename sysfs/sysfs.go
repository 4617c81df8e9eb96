// Package sysfs reads and writes small text values exposed by the kernel
// under /sys and /proc. Paths are given as format strings so per-CPU and
// per-node attributes can be addressed by index.
package sysfs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nixpig/hostos/bitmap"
	"github.com/nixpig/hostos/fsio"
)

// ReadString returns the trimmed contents of the text source at the
// formatted path. Sysfs attributes misreport their size, so the contents
// are always streamed.
func ReadString(format string, args ...any) (string, error) {
	b, err := fsio.ReadStreaming(fmt.Sprintf(format, args...))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

// ReadInt parses a single integer scalar from the text source at the
// formatted path.
func ReadInt(format string, args ...any) (int, error) {
	s, err := ReadString(format, args...)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf(
			"parse '%s': %w", fmt.Sprintf(format, args...), err,
		)
	}

	return n, nil
}

// ReadBitmap parses a kernel cpulist source at the formatted path into a
// bitmap. It returns nil when the source is missing, unreadable, or
// malformed; callers treat nil as "no data here", never as an empty set.
func ReadBitmap(format string, args ...any) *bitmap.Bitmap {
	s, err := ReadString(format, args...)
	if err != nil {
		return nil
	}

	b, err := bitmap.ParseList(s)
	if err != nil {
		return nil
	}

	return b
}

// WriteString writes a value to a writable attribute at the formatted
// path.
func WriteString(value string, format string, args ...any) error {
	path := fmt.Sprintf(format, args...)

	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write '%s': %w", path, err)
	}

	return nil
}
