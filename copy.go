//go:build unix

package fsutil

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CopyFD copies the entire contents of the src descriptor to the dst
// descriptor, starting at each descriptor's current position and continuing
// until end of input. Regular files take a kernel-assisted zero-copy fast
// path on platforms that have one; everything else, and any zero-copy
// failure, goes through a buffered read/write loop (the fallback is a
// strategy switch, not a retry — zero-copy is not resumed).
//
// Read failures wrap ErrCopyRead and write failures wrap ErrCopyWrite; the
// underlying OS error stays in the chain for errors.Is and errors.As.
func CopyFD(dst, src int, opts ...CopyOption) error {
	cfg := defaultCopyConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.zeroCopy {
		done, err := copyZeroCopy(dst, src)
		if done {
			return err
		}
	}
	return copyBuffered(dst, src, cfg.bufferSize)
}

// copyBuffered copies src to dst through a fixed-size buffer, flushing each
// chunk completely before reading the next (partial writes loop until the
// chunk is written out). The buffer is zeroed before returning so copied
// data does not linger in memory.
func copyBuffered(dst, src, bufSize int) error {
	buf := make([]byte, bufSize)
	defer clear(buf)

	for {
		nr, err := unix.Read(src, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCopyRead, err)
		}
		if nr == 0 {
			return nil
		}
		for off := 0; nr > 0; {
			nw, err := unix.Write(dst, buf[off:off+nr])
			if err == unix.EINTR {
				continue
			}
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCopyWrite, err)
			}
			nr -= nw
			off += nw
		}
	}
}
