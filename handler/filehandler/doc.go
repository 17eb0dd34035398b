// Package filehandler provides the size-rotating file sink.
//
// The RotatingFileHandler owns exactly one open file handle at a time
// and tracks the bytes it has written itself (currentSize); after the
// initial size recovery in append mode it never stats the file again.
// When the next write would push currentSize past MaxBytes, the
// handler rotates first: the open file closes, path.i renames to
// path.(i+1) from the highest backup index down to the primary, the
// oldest backup falls off the end, and a fresh primary opens.
//
// On disk that yields path (current), path.1 (most recent backup)
// through path.MaxBackups (oldest). No backup beyond MaxBackups ever
// exists.
//
// Writes are synchronous and unbuffered. A failed rotation leaves the
// handler with no open file; the next write surfaces that instead of
// retrying, so rotation failures are never masked.
package filehandler
