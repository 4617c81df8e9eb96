// Package topology discovers the host's CPU and NUMA layout from
// kernel-exposed sources. Every query returns a nil bitmap (or a -1
// sentinel) when the source is missing, unreadable, or unsupported on
// this platform; that is a normal result for the caller, not an error.
package topology
