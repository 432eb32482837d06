// Package fsutil provides portable low-level filesystem and file-descriptor
// primitives for command-line tools: safe temporary-file creation, bulk
// descriptor closing, recursive directory creation, path splitting, and
// efficient descriptor-to-descriptor copying.
//
// The package targets Unix platforms. On Linux the bulk closer enumerates
// /proc/self/fd and the copier uses sendfile(2); elsewhere it falls back to
// /dev/fd and a buffered read/write loop. All operations are synchronous and
// report failure through explicit error returns; nothing here retries except
// the copier's deliberate zero-copy-to-buffered strategy fallback.
//
// # Temporary Files
//
//	f, err := fsutil.TempFile("", "mytool")
//	if err != nil {
//	    return err
//	}
//	defer os.Remove(f.Name())
//	defer f.Close()
//
// The file is created with mode 0600 regardless of the ambient umask, with
// close-on-exec set, in the explicit directory if given, else $TMPDIR, else
// /tmp. The descriptor and the name belong together: remove the name when
// closing the descriptor.
//
// # Closing Descriptors
//
// CloseAllExcept is intended for the window before an exec-family call,
// where a child must not inherit stray descriptors:
//
//	fsutil.CloseAllExcept(0, 1, 2, ctlFD)
//
// It races inherently with concurrent descriptor creation; do not call it
// while other goroutines open or close files. The Go runtime keeps
// descriptors of its own (netpoll), so inside a live Go process the
// exclusion set must cover every descriptor the process still needs.
//
// # Copying
//
//	err := fsutil.CopyFD(int(dst.Fd()), int(src.Fd()))
//
// CopyFD copies from the current position of src to the current position of
// dst until end of input. The reported size of a regular file is treated as
// advisory: after the sized zero-copy loop the copier drains in fixed chunks
// until a true end-of-file, so files that grow between stat and copy are
// still copied completely.
//
// # Process-Wide State
//
// TempFile narrows the process umask for the creation window and restores it
// on every exit path; concurrent TempFile calls are serialized internally.
// Other code that reads or writes the umask concurrently needs external
// synchronization.
package fsutil
