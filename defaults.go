package fsutil

// Default values used by the descriptor and copy primitives. These constants
// are exported so callers can build configurations relative to them (e.g.,
// 4 * DefaultCopyBufferSize).
const (
	// DefaultCopyBufferSize is the buffer size of CopyFD's buffered
	// read/write loop, used when the zero-copy path is unavailable or has
	// been abandoned.
	DefaultCopyBufferSize = 8 * 1024

	// DefaultTempDir is the temporary directory used by TempFile when no
	// explicit directory is given and $TMPDIR is unset.
	DefaultTempDir = "/tmp"

	// DefaultFDTableSize is the descriptor table size assumed by
	// FDTableSize when the resource-limit query fails.
	DefaultFDTableSize = 1024

	// maxFDTableSize caps FDTableSize when the soft limit is unlimited or
	// absurdly large, keeping the bulk closer's brute-force scan bounded.
	maxFDTableSize = 1 << 20

	// maxTempFileAttempts bounds TempFile's retry loop on name collisions.
	maxTempFileAttempts = 10000

	// drainChunkSize is the per-call byte budget of the zero-copy drain
	// loop that runs after a regular file's reported size is exhausted.
	drainChunkSize = 1024 * 1024
)
