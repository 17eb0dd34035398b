package logger_test

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/rotolog/handler/consolehandler"
	"github.com/philipp01105/rotolog/logger"
)

// newRotologLogger returns a logger writing text lines to io.Discard.
func newRotologLogger() *logger.Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.Config{
		Writer: io.Discard,
	})
	l := logger.New("bench")
	l.AddHandler(h)
	return l
}

// newZapLogger returns a zap.Logger writing to io.Discard, as the
// reference point for the same single-message workload.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(core)
}

func BenchmarkInfo(b *testing.B) {
	b.Run("rotolog", func(b *testing.B) {
		l := newRotologLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("benchmark message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("benchmark message")
		}
	})
}

func BenchmarkInfoFiltered(b *testing.B) {
	b.Run("rotolog", func(b *testing.B) {
		l := newRotologLogger()
		if err := l.SetLevel("ERROR"); err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("filtered out")
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.ErrorLevel)
		l := zap.New(core)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("filtered out")
		}
	})
}

func BenchmarkInfoDeferred(b *testing.B) {
	l := newRotologLogger()
	if err := l.SetLevel("ERROR"); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info(deferredMessage)
	}
}

var deferredMessage = func() any { return "never built" }
