package formatter

import (
	"bytes"
	"time"

	"github.com/philipp01105/rotolog/core"
)

// TextFormatter formats log records as human-readable text lines.
type TextFormatter struct {
	Config
}

// Config holds formatter configuration.
type Config struct {
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as "[timestamp][LEVEL][logger] message",
// appending rendered arguments space-separated after the message.
func (f *TextFormatter) Format(record *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(record, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(record *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	// Use AppendFormat to avoid a string allocation for the timestamp
	buf.Write(record.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString("][")
	buf.WriteString(record.Level.String())
	buf.WriteString("][")
	buf.WriteString(record.LoggerName)
	buf.WriteString("] ")
	buf.WriteString(record.Message)

	for _, arg := range record.Args {
		buf.WriteByte(' ')
		buf.WriteString(core.Stringify(arg))
	}
}
