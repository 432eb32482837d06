//go:build unix

package fsutil

import "golang.org/x/sys/unix"

// FDTableSize returns the maximum number of file descriptors the process may
// have open, from the RLIMIT_NOFILE soft limit. When the query fails the
// compiled-in DefaultFDTableSize is returned; an unlimited or implausibly
// large soft limit is clamped so callers iterating the table stay bounded.
func FDTableSize() int {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rl); err != nil {
		return DefaultFDTableSize
	}
	if rl.Cur == unix.RLIM_INFINITY || rl.Cur > maxFDTableSize {
		return maxFDTableSize
	}
	return int(rl.Cur)
}
