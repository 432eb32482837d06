package fsutil

import "fmt"

// copyConfig holds the resolved settings for one CopyFD call.
type copyConfig struct {
	bufferSize int
	zeroCopy   bool
}

// defaultCopyConfig returns a copyConfig populated with all default values.
// CopyFD and test helpers both use this to avoid duplicating defaults.
func defaultCopyConfig() copyConfig {
	return copyConfig{
		bufferSize: DefaultCopyBufferSize,
		zeroCopy:   true,
	}
}

// CopyOption configures a CopyFD call.
//
// WithCopyBufferSize panics on invalid input. The panic is intentional:
// option values are typically compile-time constants, so an invalid value
// indicates a programmer error rather than a runtime condition. The pattern
// mirrors [regexp.MustCompile] — fail fast instead of returning an error
// that would be universally fatal anyway.
type CopyOption func(*copyConfig)

// WithCopyBufferSize sets the buffer size of the buffered read/write loop.
// The buffer is allocated per call and zeroed before CopyFD returns.
//
// Default: DefaultCopyBufferSize.
//
// Panics if n <= 0.
func WithCopyBufferSize(n int) CopyOption {
	if n <= 0 {
		panic(fmt.Sprintf("fsutil: copy buffer size must be greater than 0, got %d", n))
	}
	return func(c *copyConfig) {
		c.bufferSize = n
	}
}

// WithoutZeroCopy disables the kernel-assisted zero-copy fast path, forcing
// the buffered read/write loop even for regular files on platforms that
// support zero-copy transfers. Mainly useful for testing and for diagnosing
// filesystem-specific sendfile problems.
func WithoutZeroCopy() CopyOption {
	return func(c *copyConfig) {
		c.zeroCopy = false
	}
}
