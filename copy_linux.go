//go:build linux

package fsutil

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// maxSendfileChunk caps the byte count of a single sendfile call; the kernel
// truncates larger requests anyway.
const maxSendfileChunk = 1 << 30

// copyZeroCopy transfers src to dst with sendfile(2). It reports
// handled=true when the transfer completed (or definitively failed with err
// set) and handled=false when the caller should run the buffered loop
// instead: src is not a regular file, or a sendfile call failed. Because
// sendfile advances the source position, the buffered fallback resumes
// exactly where the fast path stopped.
func copyZeroCopy(dst, src int) (handled bool, err error) {
	var st unix.Stat_t
	if err := unix.Fstat(src, &st); err != nil {
		return true, fmt.Errorf("%w: stat source: %w", ErrCopyRead, err)
	}
	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		return false, nil
	}

	for left := st.Size; left > 0; {
		n := maxSendfileChunk
		if left < int64(n) {
			n = int(left)
		}
		nw, err := unix.Sendfile(dst, src, nil, n)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			Logger().Debug("zero-copy transfer failed, falling back to buffered copy", "error", err)
			return false, nil
		}
		if nw == 0 {
			return true, nil
		}
		left -= int64(nw)
	}

	// The reported size is advisory: the file may have grown between stat
	// and transfer. Drain in fixed chunks until a zero-byte result signals
	// true end of input.
	for {
		nw, err := unix.Sendfile(dst, src, nil, drainChunkSize)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			Logger().Debug("zero-copy drain failed, falling back to buffered copy", "error", err)
			return false, nil
		}
		if nw == 0 {
			return true, nil
		}
	}
}
