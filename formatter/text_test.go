package formatter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/rotolog/core"
)

func TestTextFormatter_DefaultLine(t *testing.T) {
	f := NewTextFormatter(Config{})
	record := core.NewRecord("service started", nil, core.InfoLevel, "app")

	out, err := f.Format(record)
	require.NoError(t, err)

	want := fmt.Sprintf("[%s][INFO][app] service started", record.Time.Format(time.RFC3339))
	assert.Equal(t, want, string(out))
}

func TestTextFormatter_Args(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: "2006"})
	record := core.NewRecord("listening", []any{8080, map[string]any{"tls": true}}, core.WarnLevel, "net")

	out, err := f.Format(record)
	require.NoError(t, err)

	want := fmt.Sprintf("[%s][WARN][net] listening 8080 {\"tls\": true}", record.Time.Format("2006"))
	assert.Equal(t, want, string(out))
}

func TestTextFormatter_UsesRecordTime(t *testing.T) {
	f := NewTextFormatter(Config{})
	record := &core.Record{
		Message:    "late emission",
		Level:      core.DebugLevel,
		LoggerName: "x",
		Time:       time.Date(2020, 5, 4, 3, 2, 1, 0, time.UTC),
	}

	out, err := f.Format(record)
	require.NoError(t, err)
	// Handlers may emit later, but the line carries the construction time.
	assert.Equal(t, "[2020-05-04T03:02:01Z][DEBUG][x] late emission", string(out))
}
