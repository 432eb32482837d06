//go:build unix

package fsutil

// CopyConfigSnapshot holds a copy of copyConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type CopyConfigSnapshot struct {
	BufferSize int
	ZeroCopy   bool
}

// ApplyCopyOptionsForTesting creates a default copyConfig, applies the given
// options, and returns a CopyConfigSnapshot of the result.
func ApplyCopyOptionsForTesting(opts ...CopyOption) CopyConfigSnapshot {
	cfg := defaultCopyConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return CopyConfigSnapshot{
		BufferSize: cfg.bufferSize,
		ZeroCopy:   cfg.zeroCopy,
	}
}

// CloseFDRangeForTesting exposes the brute-force descriptor-table scan so
// subprocess tests can exercise the fallback path directly; the listing
// path auto-selects whenever the fd directory is readable.
func CloseFDRangeForTesting(exclude []int) {
	closeFDRange(exclude)
}

// FDListDirForTesting exposes the per-process descriptor listing path so
// test helpers can enumerate their own open descriptors.
const FDListDirForTesting = fdListDir
