package logger_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/rotolog/core"
	"github.com/philipp01105/rotolog/handler"
	"github.com/philipp01105/rotolog/logger"
)

// captureHandler records everything it receives.
type captureHandler struct {
	handler.Base
	records []*core.Record
	err     error
	closes  int
}

func newCapture(level core.Level) *captureHandler {
	return &captureHandler{Base: handler.NewBase(level, nil)}
}

func (h *captureHandler) Handle(record *core.Record) error {
	if !h.Enabled(record.Level) {
		return nil
	}
	h.records = append(h.records, record)
	return h.err
}

func (h *captureHandler) Close() error {
	h.closes++
	return nil
}

func TestLogger_ThresholdGate(t *testing.T) {
	sink := newCapture(core.NotSet)
	l := logger.New("app")
	require.NoError(t, l.SetLevel("WARN"))
	l.AddHandler(sink)

	_, err := l.Info("below threshold")
	require.NoError(t, err)
	assert.Empty(t, sink.records)

	_, err = l.Warn("at threshold")
	require.NoError(t, err)
	require.Len(t, sink.records, 1)
	assert.Equal(t, "at threshold", sink.records[0].Message)
	assert.Equal(t, core.WarnLevel, sink.records[0].Level)
	assert.Equal(t, "app", sink.records[0].LoggerName)
	assert.False(t, sink.records[0].Time.IsZero())
}

func TestLogger_DeferredNeverEvaluatedWhenFiltered(t *testing.T) {
	sink := newCapture(core.NotSet)
	l := logger.New("app")
	require.NoError(t, l.SetLevel(core.ErrorLevel))
	l.AddHandler(sink)

	invoked := false
	producer := core.Deferred(func() any {
		invoked = true
		return "expensive"
	})

	_, err := l.Info(producer)
	require.NoError(t, err)
	assert.False(t, invoked, "filtered call must not evaluate the producer")
	assert.Empty(t, sink.records)

	got, err := l.Error(producer)
	require.NoError(t, err)
	assert.True(t, invoked)
	assert.Equal(t, "expensive", got, "caller receives the producer's result")
	require.Len(t, sink.records, 1)
	assert.Equal(t, "expensive", sink.records[0].Message)
}

func TestLogger_PassThroughReturn(t *testing.T) {
	l := logger.New("app") // NOTSET: everything passes
	l.AddHandler(newCapture(core.NotSet))

	got, err := l.Info("inline value")
	require.NoError(t, err)
	assert.Equal(t, "inline value", got)

	got, err = l.Debug(42)
	require.NoError(t, err)
	assert.Equal(t, 42, got, "original value comes back, not the formatted string")
}

// orderHandler appends its id to a shared sequence on every record.
type orderHandler struct {
	handler.Base
	id  string
	seq *[]string
}

func (h *orderHandler) Handle(record *core.Record) error {
	*h.seq = append(*h.seq, h.id)
	return nil
}

func (h *orderHandler) Close() error { return nil }

func TestLogger_FanOutOrder(t *testing.T) {
	var seq []string
	l := logger.New("app")
	l.AddHandler(&orderHandler{Base: handler.NewBase(core.NotSet, nil), id: "first", seq: &seq})
	l.AddHandler(&orderHandler{Base: handler.NewBase(core.NotSet, nil), id: "second", seq: &seq})
	l.AddHandler(&orderHandler{Base: handler.NewBase(core.NotSet, nil), id: "third", seq: &seq})

	_, err := l.Critical("fan out")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, seq)
}

func TestLogger_HandlerErrorPropagates(t *testing.T) {
	sinkErr := errors.New("sink unavailable")
	failing := newCapture(core.NotSet)
	failing.err = sinkErr
	after := newCapture(core.NotSet)

	l := logger.New("app")
	l.AddHandler(failing)
	l.AddHandler(after)

	got, err := l.Info("message")
	assert.ErrorIs(t, err, sinkErr)
	assert.Equal(t, "message", got, "the message still comes back alongside the error")
	assert.Empty(t, after.records, "fan-out stops at the failing handler")
}

func TestLogger_HandlerThresholdIndependent(t *testing.T) {
	sink := newCapture(core.ErrorLevel)
	l := logger.New("app") // logger passes everything

	l.AddHandler(sink)
	_, err := l.Info("handler filters this")
	require.NoError(t, err)
	assert.Empty(t, sink.records)

	_, err = l.Critical("handler keeps this")
	require.NoError(t, err)
	assert.Len(t, sink.records, 1)
}

func TestLogger_SetLevel(t *testing.T) {
	l := logger.New("app")

	require.NoError(t, l.SetLevel("critical"))
	assert.Equal(t, core.CriticalLevel, l.Level())

	require.NoError(t, l.SetLevel(20))
	assert.Equal(t, core.InfoLevel, l.Level())

	err := l.SetLevel(33)
	assert.ErrorIs(t, err, core.ErrUnknownLevelRank)
	assert.Equal(t, core.InfoLevel, l.Level())
}

func TestLogger_ArgsCarriedOnRecord(t *testing.T) {
	sink := newCapture(core.NotSet)
	l := logger.New("app")
	l.AddHandler(sink)

	_, err := l.Info("request done", 200, "GET")
	require.NoError(t, err)
	require.Len(t, sink.records, 1)
	assert.Equal(t, []any{200, "GET"}, sink.records[0].Args)
}
