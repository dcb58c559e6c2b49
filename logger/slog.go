package logger

import (
	"context"
	"log/slog"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SlogHandler implements slog.Handler on top of a Logger's cores, so
// records from log/slog are filtered and formatted by the applied
// configuration.
type SlogHandler struct {
	core  zapcore.Core
	name  string
	attrs []zap.Field
	group string
}

// NewSlogHandler creates a slog.Handler that writes through l
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{core: l.Core()}
}

// Slog returns a *slog.Logger writing through l under the logger name
func (l *Logger) Slog(name string) *slog.Logger {
	h := NewSlogHandler(l)
	h.name = name
	return slog.New(h)
}

// Enabled reports whether any handler accepts records at level
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.core.Enabled(zapLevel(level))
}

// Handle converts the record to a zap entry and writes it
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	ent := zapcore.Entry{
		LoggerName: s.name,
		Time:       record.Time,
		Level:      zapLevel(record.Level),
		Message:    record.Message,
	}
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		ent.Caller = zapcore.EntryCaller{
			Defined:  true,
			PC:       frame.PC,
			File:     frame.File,
			Line:     frame.Line,
			Function: frame.Function,
		}
	}

	ce := s.core.Check(ent, nil)
	if ce == nil {
		return nil
	}

	fields := make([]zap.Field, 0, record.NumAttrs())
	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, s.group, a)
		return true
	})
	ce.Write(fields...)
	return nil
}

// WithAttrs returns a handler that adds attrs to every record
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make([]zap.Field, 0, len(attrs))
	for _, a := range attrs {
		fields = appendAttr(fields, s.group, a)
	}
	return &SlogHandler{
		core:  s.core.With(fields),
		name:  s.name,
		group: s.group,
	}
}

// WithGroup returns a handler that prefixes later attribute keys with name
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &SlogHandler{
		core:  s.core,
		name:  s.name,
		group: group,
	}
}

// zapLevel maps slog levels onto zap levels. Levels above ERROR are
// reported as CRITICAL.
func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level > slog.LevelError:
		return zapcore.DPanicLevel
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// appendAttr flattens a into dotted keys under group
func appendAttr(fields []zap.Field, group string, a slog.Attr) []zap.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, zap.String(key, a.Value.String()))
	case slog.KindInt64:
		return append(fields, zap.Int64(key, a.Value.Int64()))
	case slog.KindUint64:
		return append(fields, zap.Uint64(key, a.Value.Uint64()))
	case slog.KindFloat64:
		return append(fields, zap.Float64(key, a.Value.Float64()))
	case slog.KindBool:
		return append(fields, zap.Bool(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, zap.Time(key, a.Value.Time()))
	case slog.KindDuration:
		return append(fields, zap.Duration(key, a.Value.Duration()))
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	default:
		return append(fields, zap.Any(key, a.Value.Any()))
	}
}
