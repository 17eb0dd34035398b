package logger

import "github.com/philipp01105/rotolog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NotSet        = core.NotSet
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a level name to its rank
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
