package handler

import (
	"github.com/philipp01105/rotolog/core"
	"github.com/philipp01105/rotolog/formatter"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log record: gate by threshold, format, emit.
	Handle(record *core.Record) error

	// Level returns the handler's own severity threshold.
	Level() core.Level

	// SetLevel updates the threshold. It accepts a level name or a
	// canonical numeric rank, mirroring the logger's dual contract.
	SetLevel(v any) error

	// Close releases the handler's resources. Implementations are
	// idempotent; a second Close is a no-op.
	Close() error
}

// Base carries the threshold and formatter contract shared by the two
// built-in sinks. Concrete handlers embed it and supply emit.
type Base struct {
	level core.Level
	fmt   formatter.Formatter
}

// NewBase builds the shared handler state. A nil formatter falls back
// to the default TextFormatter.
func NewBase(level core.Level, f formatter.Formatter) Base {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	return Base{level: level, fmt: f}
}

// Level returns the current threshold.
func (b *Base) Level() core.Level {
	return b.level
}

// SetLevel updates the threshold from a name or canonical rank.
func (b *Base) SetLevel(v any) error {
	level, err := core.ResolveLevel(v)
	if err != nil {
		return err
	}
	b.level = level
	return nil
}

// Enabled reports whether a record at the given level passes the
// handler's threshold.
func (b *Base) Enabled(level core.Level) bool {
	return level >= b.level
}

// Format runs the formatter hook on a record.
func (b *Base) Format(record *core.Record) ([]byte, error) {
	return b.fmt.Format(record)
}
