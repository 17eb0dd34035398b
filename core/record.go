package core

import "time"

// Record represents a single log event. It is immutable once
// constructed; handlers that emit later must still use the Time
// captured here, never the emission time.
type Record struct {
	Message    string
	Args       []any
	Level      Level
	LoggerName string
	Time       time.Time
}

// NewRecord builds a Record, capturing the wall clock at construction.
func NewRecord(message string, args []any, level Level, loggerName string) *Record {
	return &Record{
		Message:    message,
		Args:       args,
		Level:      level,
		LoggerName: loggerName,
		Time:       time.Now(),
	}
}

// Deferred is a message producer whose evaluation is postponed until
// the level gate has passed. A logger whose threshold filters the call
// out never invokes it, so expensive message construction is free when
// the level is off.
type Deferred func() any
