//go:build unix

package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// umaskMu serializes the umask narrow/restore window so concurrent TempFile
// calls cannot restore a stale mask. The umask is process-wide; callers that
// mutate it outside this package still need their own synchronization.
var umaskMu sync.Mutex

// TempFile creates and opens a new, unique regular file for reading and
// writing, named <dir>/<prefix>.<6 hex chars>, with mode 0600 regardless of
// the ambient umask and with close-on-exec set. The full path is available
// as f.Name(); remove it together with closing the descriptor.
//
// When dir is empty the directory comes from $TMPDIR, else DefaultTempDir.
// An explicit dir matters when the file must later be moved into place
// atomically with rename(2), which cannot cross filesystems.
//
// Creation uses exclusive-create semantics, so it is atomic with respect to
// other processes: there is no window where the name is chosen but not yet
// claimed. Name collisions retry with a fresh suffix up to a fixed cap.
func TempFile(dir, prefix string) (*os.File, error) {
	if dir == "" {
		if dir = os.Getenv("TMPDIR"); dir == "" {
			dir = DefaultTempDir
		}
	}

	// Narrow the file-creation mask to owner-only for the creation window
	// and restore it on every exit path.
	umaskMu.Lock()
	defer umaskMu.Unlock()
	old := unix.Umask(0o077)
	defer unix.Umask(old)

	var lastErr error
	for range maxTempFileAttempts {
		name := filepath.Join(dir, fmt.Sprintf("%s.%06x", prefix, rand.Uint32N(1<<24)))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL|unix.O_CLOEXEC, 0o600)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("create temporary file: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("create temporary file in %s: suffixes exhausted: %w", dir, lastErr)
}
