//go:build unix

package fsutil

import (
	"os"
	"slices"
	"strconv"

	"golang.org/x/sys/unix"
)

// CloseAllExcept closes every file descriptor open in the calling process
// except those listed in exclude. The exclusion set is read-only and may be
// given in any order.
//
// The preferred strategy reads the per-process descriptor listing (fdListDir,
// /proc/self/fd on Linux, /dev/fd elsewhere); entries whose names are not
// pure decimal integers are skipped, as is the descriptor used for the
// enumeration itself. When the listing cannot be opened, every descriptor
// from 0 up to FDTableSize() is closed instead, silently ignoring errors
// from descriptors that were never open. The two strategies close the same
// set of live descriptors; the brute-force path just cannot tell "nothing to
// close" from "closed N descriptors".
//
// Errors from individual close operations are deliberately discarded: the
// function's contract is the post-state (only excluded descriptors remain),
// not an accounting of what was closed.
func CloseAllExcept(exclude ...int) {
	dir, err := os.Open(fdListDir)
	if err != nil {
		Logger().Debug("descriptor listing unavailable, scanning descriptor table",
			"dir", fdListDir, "error", err)
		closeFDRange(exclude)
		return
	}
	defer dir.Close()

	// Collect all names before closing anything so the directory stream is
	// not read while its entries are being invalidated.
	names, _ := dir.Readdirnames(-1)
	selfFD := int(dir.Fd())
	for _, name := range names {
		// Reject anything that is not a pure decimal integer; the listing
		// should contain nothing else, but garbage must not map to a
		// descriptor number.
		n, err := strconv.ParseUint(name, 10, 31)
		if err != nil {
			continue
		}
		fd := int(n)
		if fd == selfFD || slices.Contains(exclude, fd) {
			continue
		}
		_ = unix.Close(fd)
	}
}

// closeFDRange closes every descriptor in [0, FDTableSize()) not present in
// exclude, whether or not it is open. Close errors are ignored.
func closeFDRange(exclude []int) {
	tbsz := FDTableSize()
	for fd := 0; fd < tbsz; fd++ {
		if !slices.Contains(exclude, fd) {
			_ = unix.Close(fd)
		}
	}
}
