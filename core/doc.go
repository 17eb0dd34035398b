// Package core defines the shared types used across the rotolog module.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single log event, and the Stringify helper that
// renders arbitrary message values into a human-readable debug form.
//
// Levels carry the canonical rank spacing (NOTSET=0 through
// CRITICAL=50), but only the six canonical ranks are valid anywhere a
// level is accepted. ResolveLevel is the single normalization point for
// the dual name/rank representation: callers may pass a level name, a
// numeric rank, or a Level value, and anything non-canonical is
// rejected with ErrUnknownLevelName or ErrUnknownLevelRank.
//
// Records are plain immutable values. Unlike pooled log-entry designs,
// a Record may outlive the log call that produced it (formatters and
// tests hold on to them), so they are never recycled.
package core
