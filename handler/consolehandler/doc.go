// Package consolehandler writes formatted log lines to the process's
// standard output stream (or any io.Writer).
//
// When colors are enabled, the whole formatted line is wrapped in an
// ANSI color chosen solely by the record's level: DEBUG blue, INFO
// green, WARN yellow, ERROR red, CRITICAL bold red. NOTSET and any
// other rank stay uncolored. Color is applied after formatting, never
// inside it.
//
// TerminalWriter reports whether a writer is an interactive terminal,
// so callers can enable colors only when a human is watching.
package consolehandler
