// Package sentinel provides an immutable error type for sentinel error
// declarations.
//
// Sentinel errors declared with errors.New are package variables that code
// elsewhere could reassign. Error is a string-based error type declarable as
// a const, keeping sentinels truly immutable while staying compatible with
// errors.Is across wrapped chains.
package sentinel
