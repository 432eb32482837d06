package fsutil

import "strings"

// SplitLast splits path at its final separator, returning the parent
// directory and the last component. ok is false when path contains no
// separator at all, in which case dir and last are empty.
//
// For a path that is exactly the root separator, dir and last are both the
// empty string with ok true. Trailing content after the last separator is
// the component; "/usr/bin" yields ("/usr", "bin", true).
//
// Both results are views into the input string's backing array; with Go's
// immutable strings no copy is made and the caller's string is untouched.
func SplitLast(path string) (dir, last string, ok bool) {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "", "", false
	}
	return path[:i], path[i+1:], true
}
