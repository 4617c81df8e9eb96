// Package hooks carries the lowest-level runtime primitives the rest of
// a system builds on: fatal abort, process exit, diagnostic output,
// out-of-memory handling, and the active thread count. Each has a
// default suitable for a standalone single-threaded process; an
// embedding host installs its own table once at startup with Set, and
// every call thereafter goes through that single indirection point.
package hooks

import (
	"fmt"
	"os"
)

// Runtime is the set of overridable primitives. Abort and Exit must not
// return.
type Runtime interface {
	// Abort terminates the process abnormally. An override may clean up
	// or log first.
	Abort()

	// Exit terminates the process with the given status code.
	Exit(code int)

	// Puts writes a diagnostic payload to standard output, or standard
	// error when isError is set. When more than one thread is active the
	// payload must be prefixed with the calling thread's index, and
	// prefix and payload must go out as a single write so concurrent
	// callers never interleave within a line.
	Puts(p []byte, isError bool)

	// OutOfMemory handles an unrecoverable allocation failure. It may
	// attempt recovery; the default escalates to Abort.
	OutOfMemory()

	// NThreads returns the number of active worker threads.
	NThreads() int
}

var current Runtime = &defaultRuntime{out: os.Stdout, err: os.Stderr}

var threadIndex = func() int { return 0 }

// Set installs a host-supplied runtime. Call it once, before any other
// function in this package is used.
func Set(r Runtime) {
	current = r
}

// SetThreadIndexFunc registers the thread-management layer's mapping
// from the calling thread to its index, used to prefix diagnostic
// output. The default maps every caller to index 0. This package only
// reads the mapping, it never changes it.
func SetThreadIndexFunc(fn func() int) {
	threadIndex = fn
}

func Abort() { current.Abort() }

func Exit(code int) { current.Exit(code) }

func Puts(p []byte, isError bool) { current.Puts(p, isError) }

func OutOfMemory() { current.OutOfMemory() }

func NThreads() int { return current.NThreads() }

type defaultRuntime struct {
	out *os.File
	err *os.File
}

func (d *defaultRuntime) Abort() {
	panic("hostos: fatal condition")
}

func (d *defaultRuntime) Exit(code int) {
	os.Exit(code)
}

func (d *defaultRuntime) Puts(p []byte, isError bool) {
	f := d.out
	if isError {
		f = d.err
	}

	// Consult the installed table, not the embedded default, so a host
	// that overrides only NThreads still gets prefixed output.
	if NThreads() > 1 {
		line := fmt.Appendf(nil, "%d: ", threadIndex())
		line = append(line, p...)
		_, _ = f.Write(line)
		return
	}

	_, _ = f.Write(p)
}

func (d *defaultRuntime) OutOfMemory() {
	current.Abort()
}

func (d *defaultRuntime) NThreads() int {
	return 1
}
