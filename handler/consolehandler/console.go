package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/rotolog/core"
	"github.com/philipp01105/rotolog/formatter"
	"github.com/philipp01105/rotolog/handler"
)

// ANSI escape sequences, keyed by canonical level in levelColor.
const (
	colorReset   = "\x1b[0m"
	colorBlue    = "\x1b[34m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorRed     = "\x1b[31m"
	colorBoldRed = "\x1b[1;31m"
)

// Config holds configuration for the console handler
type Config struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the handler's own severity threshold
	Level core.Level
	// UseColors wraps each line in an ANSI color chosen by level
	UseColors bool
}

// ConsoleHandler writes formatted records to a writer, one line per
// record. It holds no persisted state; Close releases nothing but is
// still idempotent like every other handler.
type ConsoleHandler struct {
	handler.Base

	writer    io.Writer
	useColors bool
	mu        sync.Mutex // serializes writes so lines never interleave
	closed    chan struct{}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg Config) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	return &ConsoleHandler{
		Base:      handler.NewBase(cfg.Level, cfg.Formatter),
		writer:    cfg.Writer,
		useColors: cfg.UseColors,
		closed:    make(chan struct{}),
	}
}

// Handle gates the record by the handler's threshold, formats it, and
// writes it out.
func (h *ConsoleHandler) Handle(record *core.Record) error {
	if !h.Enabled(record.Level) {
		return nil
	}
	line, err := h.Format(record)
	if err != nil {
		return err
	}
	return h.emit(line, record.Level)
}

// emit writes one formatted line. Color wraps the already-formatted
// line, so the formatter output is identical with and without colors.
func (h *ConsoleHandler) emit(line []byte, level core.Level) error {
	out := line
	if h.useColors {
		if c := levelColor(level); c != "" {
			colored := make([]byte, 0, len(c)+len(line)+len(colorReset)+1)
			colored = append(colored, c...)
			colored = append(colored, line...)
			colored = append(colored, colorReset...)
			out = colored
		}
	}
	out = append(out, '\n')

	h.mu.Lock()
	_, err := h.writer.Write(out)
	h.mu.Unlock()
	return err
}

// Close marks the handler closed. There is no file handle to release;
// a second Close is a no-op.
func (h *ConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}

// levelColor maps a level to its ANSI color. Only DEBUG through
// CRITICAL colorize; NOTSET and any other rank stay plain.
func levelColor(level core.Level) string {
	switch level {
	case core.DebugLevel:
		return colorBlue
	case core.InfoLevel:
		return colorGreen
	case core.WarnLevel:
		return colorYellow
	case core.ErrorLevel:
		return colorRed
	case core.CriticalLevel:
		return colorBoldRed
	default:
		return ""
	}
}

// TerminalWriter reports whether w is an interactive terminal, so
// callers can decide whether colored output makes sense.
func TerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
