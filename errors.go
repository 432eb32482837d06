package fsutil

import "github.com/giantswarm/fsutil/internal/sentinel"

// Sentinel errors for error inspection with errors.Is.
// These are immutable constants safe for use in wrapped error chain comparison.
const (
	// ErrEmptyPath is returned by MkdirAll when the path is empty.
	ErrEmptyPath = sentinel.Error("path must not be empty")

	// ErrCopyRead is returned by CopyFD when reading from the source
	// descriptor fails. The underlying OS error remains in the chain.
	ErrCopyRead = sentinel.Error("read from source descriptor failed")

	// ErrCopyWrite is returned by CopyFD when writing to the destination
	// descriptor fails. The underlying OS error remains in the chain.
	ErrCopyWrite = sentinel.Error("write to destination descriptor failed")
)
