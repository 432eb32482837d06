//go:build unix

package fsutil

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DupCloexec duplicates oldfd onto the lowest free descriptor numbered minfd
// or above, with the close-on-exec flag set on the duplicate. It returns the
// new descriptor, or -1 and an error preserving the underlying OS error.
//
// The duplicate-and-flag step is atomic (F_DUPFD_CLOEXEC) where the kernel
// supports it; otherwise the flag is set in a separate fcntl after a plain
// F_DUPFD. If flag manipulation fails, the duplicate is closed before the
// error is returned, without clobbering the original error.
func DupCloexec(oldfd, minfd int) (int, error) {
	fd, err := unix.FcntlInt(uintptr(oldfd), unix.F_DUPFD_CLOEXEC, minfd)
	if err == nil {
		return fd, nil
	}

	fd, err = unix.FcntlInt(uintptr(oldfd), unix.F_DUPFD, minfd)
	if err != nil {
		return -1, fmt.Errorf("duplicate descriptor %d: %w", oldfd, err)
	}

	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	if err == nil {
		_, err = unix.FcntlInt(uintptr(fd), unix.F_SETFD, flags|unix.FD_CLOEXEC)
	}
	if err != nil {
		_ = unix.Close(fd)
		return -1, fmt.Errorf("set close-on-exec on descriptor %d: %w", fd, err)
	}
	return fd, nil
}
