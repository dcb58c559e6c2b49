package logger

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/logconfig"
)

// discard is an io.Discard stream with a no-op Sync
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Sync() error                 { return nil }

func newBenchLogger(b *testing.B, level core.Level) *Logger {
	b.Helper()
	c, err := logconfig.NewBuilder().
		WithStreamHandler("discard", logconfig.DefaultName, level, discard{}).
		WithRootHandlers("discard").
		Build()
	if err != nil {
		b.Fatal(core.Describe(err))
	}
	l, err := FromConfig(c)
	if err != nil {
		b.Fatal(err)
	}
	return l
}

func BenchmarkTemplateEncoder(b *testing.B) {
	l := newBenchLogger(b, core.NotSetLevel).Named("a")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("request handled", zap.String("path", "/api"), zap.Int("status", 200))
	}
}

func BenchmarkTemplateEncoder_Filtered(b *testing.B) {
	l := newBenchLogger(b, core.ErrorLevel)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("dropped", zap.Int("status", 200))
	}
}

// BenchmarkZapConsoleEncoder is the baseline the template encoder is compared with
func BenchmarkZapConsoleEncoder(b *testing.B) {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	l := zap.New(zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)).Named("a")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("request handled", zap.String("path", "/api"), zap.Int("status", 200))
	}
}

func BenchmarkSlogHandler(b *testing.B) {
	l := newBenchLogger(b, core.NotSetLevel).Slog("a")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("request handled", "path", "/api", "status", 200)
	}
}
