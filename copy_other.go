//go:build unix && !linux

package fsutil

// copyZeroCopy reports that no kernel-assisted copy path is available on
// this platform; CopyFD runs the buffered loop for everything.
func copyZeroCopy(dst, src int) (handled bool, err error) {
	return false, nil
}
