package logger

import (
	"github.com/philipp01105/rotolog/core"
	"github.com/philipp01105/rotolog/handler"
)

// Logger gates log calls by its severity threshold and fans records
// out to its attached handlers in attachment order. Handlers are
// shared, not owned: their lifetime belongs to the Manager that
// registered them.
type Logger struct {
	name     string
	level    core.Level
	handlers []handler.Handler
}

// New creates a logger with the default threshold NOTSET and no
// handlers. Most callers get loggers from a Manager instead.
func New(name string) *Logger {
	return &Logger{name: name}
}

// Name returns the logger's name.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current threshold.
func (l *Logger) Level() core.Level {
	return l.level
}

// SetLevel updates the threshold. It accepts either a level name or a
// canonical numeric rank; non-canonical ranks are rejected.
func (l *Logger) SetLevel(v any) error {
	level, err := core.ResolveLevel(v)
	if err != nil {
		return err
	}
	l.level = level
	return nil
}

// AddHandler appends a handler. Attachment order is fan-out order,
// which matters when handlers share a sink.
func (l *Logger) AddHandler(h handler.Handler) {
	l.handlers = append(l.handlers, h)
}

// Handlers returns the attached handlers in fan-out order.
func (l *Logger) Handlers() []handler.Handler {
	return l.handlers
}

// setHandlers replaces the handler list wholesale; used by Configure.
func (l *Logger) setHandlers(hs []handler.Handler) {
	l.handlers = hs
}

// Debug logs a message at DEBUG.
func (l *Logger) Debug(msg any, args ...any) (any, error) {
	return l.log(core.DebugLevel, msg, args)
}

// Info logs a message at INFO.
func (l *Logger) Info(msg any, args ...any) (any, error) {
	return l.log(core.InfoLevel, msg, args)
}

// Warn logs a message at WARN.
func (l *Logger) Warn(msg any, args ...any) (any, error) {
	return l.log(core.WarnLevel, msg, args)
}

// Error logs a message at ERROR.
func (l *Logger) Error(msg any, args ...any) (any, error) {
	return l.log(core.ErrorLevel, msg, args)
}

// Critical logs a message at CRITICAL.
func (l *Logger) Critical(msg any, args ...any) (any, error) {
	return l.log(core.CriticalLevel, msg, args)
}

// log is the single delivery path. It returns the resolved message so
// loggers can sit inline in a data flow, and the first handler error,
// since delivery failures are caller-visible by contract.
func (l *Logger) log(level core.Level, msg any, args []any) (any, error) {
	// Gate first: a filtered call returns the message untouched and a
	// deferred producer is never invoked.
	if l.level > level {
		return msg, nil
	}

	resolved := msg
	switch producer := msg.(type) {
	case core.Deferred:
		resolved = producer()
	case func() any:
		resolved = producer()
	}

	record := core.NewRecord(core.Stringify(resolved), args, level, l.name)
	for _, h := range l.handlers {
		if err := h.Handle(record); err != nil {
			return resolved, err
		}
	}
	return resolved, nil
}
