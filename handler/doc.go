// Package handler provides the Handler interface and the Base contract
// shared by the built-in sinks.
//
// A Handler receives a record, decides via its own threshold whether to
// emit it, formats it, and writes it to its sink. Exactly two sinks
// exist at this layer:
//
//   - consolehandler.ConsoleHandler writes to the process's standard
//     output (or any io.Writer), optionally colorized by level.
//   - filehandler.RotatingFileHandler writes to a file with size-based
//     rotation and numbered backup retention.
//
// Every handler call completes synchronously: there is no queue, no
// background goroutine, and no buffering across calls. Write failures
// are returned to the caller rather than swallowed — silent data loss
// in a logging subsystem is worse than a surfaced failure.
//
// Handler thresholds are mutable after construction via SetLevel, which
// accepts either a level name or a numeric rank.
package handler
