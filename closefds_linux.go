//go:build linux

package fsutil

// fdListDir is the per-process descriptor listing: one entry per open
// descriptor, named by its decimal value.
const fdListDir = "/proc/self/fd"
