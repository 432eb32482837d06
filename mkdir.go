package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// MkdirAll creates every missing directory along path with the given mode,
// like mkdir -p. Prefixes that already exist are not an error, so repeated
// calls on the same path are no-op successes. On failure, directories
// created before the error persist; nothing is rolled back.
//
// The mode is subject to the process umask, as with os.Mkdir. An empty path
// returns ErrEmptyPath.
func MkdirAll(path string, mode os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	// Skip the absolute-path marker, then create each non-empty prefix up
	// to the next separator. Consecutive separators produce empty segments
	// and are skipped.
	p := 0
	if path[0] == '/' {
		p = 1
	}
	for p < len(path) {
		e := strings.IndexByte(path[p:], '/')
		prefix := path
		if e >= 0 {
			prefix = path[:p+e]
		}
		if e != 0 {
			if err := os.Mkdir(prefix, mode); err != nil && !errors.Is(err, fs.ErrExist) {
				return fmt.Errorf("create directory %s: %w", prefix, err)
			}
		}
		if e < 0 {
			break
		}
		p += e + 1
	}
	return nil
}
