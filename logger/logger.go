package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/formatter"
	"github.com/philipp01105/logconf/handler"
	"github.com/philipp01105/logconf/logconfig"
)

// defaultMessageFormat is used by handlers without a formatter
const defaultMessageFormat = "%(message)s"

// Logger is a zap logger built from a configuration map. It owns the
// files its handlers opened.
type Logger struct {
	*zap.Logger
	closers []io.Closer
}

// New builds a Logger from a configuration map as produced by
// LogConfig.Render, or by decoding the JSON or YAML form of
// LogConfig.Portable. Only handlers listed under root are built.
func New(config map[string]any) (*Logger, error) {
	version, ok := asInt(config["version"])
	if !ok || version != logconfig.Version {
		return nil, errors.Errorf("unsupported configuration version %v", config["version"])
	}

	formatters, err := section(config, "formatters")
	if err != nil {
		return nil, err
	}
	handlers, err := section(config, "handlers")
	if err != nil {
		return nil, err
	}
	root, err := section(config, "root")
	if err != nil {
		return nil, err
	}

	rootLevel, err := levelOf(root["level"])
	if err != nil {
		return nil, errors.Wrap(err, "root")
	}
	names, err := stringList(root["handlers"])
	if err != nil {
		return nil, errors.Wrap(err, "root.handlers")
	}

	l := &Logger{}
	cores := make([]zapcore.Core, 0, len(names))
	for _, name := range names {
		hm, ok := asMap(handlers[name])
		if !ok {
			_ = l.closeFiles()
			return nil, errors.Errorf("root references unknown handler %q", name)
		}
		c, err := l.buildCore(hm, formatters, rootLevel)
		if err != nil {
			_ = l.closeFiles()
			return nil, errors.Wrapf(err, "handler %q", name)
		}
		cores = append(cores, c)
	}

	l.Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return l, nil
}

// FromConfig builds a Logger from c.Render()
func FromConfig(c *logconfig.LogConfig) (*Logger, error) {
	return New(c.Render())
}

// Close flushes the logger and closes the files it opened
func (l *Logger) Close() error {
	if l.Logger != nil {
		// Syncing a terminal fails on some platforms; only close errors matter
		_ = l.Sync()
	}
	return l.closeFiles()
}

func (l *Logger) closeFiles() error {
	var err error
	for _, c := range l.closers {
		err = multierr.Append(err, c.Close())
	}
	l.closers = nil
	return err
}

func (l *Logger) buildCore(hm, formatters map[string]any, rootLevel core.Level) (zapcore.Core, error) {
	tmpl, err := compileFormatter(hm["formatter"], formatters)
	if err != nil {
		return nil, err
	}
	level, err := levelOf(hm["level"])
	if err != nil {
		return nil, err
	}

	var sink zapcore.WriteSyncer
	switch class, _ := hm["class"].(string); class {
	case handler.StreamKind.Class():
		sink, err = l.streamSink(hm["stream"])
	case handler.FileKind.Class():
		sink, err = l.fileSink(hm)
	default:
		err = errors.Errorf("unsupported class %q", class)
	}
	if err != nil {
		return nil, err
	}

	enc := newTemplateEncoder(tmpl)
	return zapcore.NewCore(enc, zapcore.Lock(sink), threshold(rootLevel, level)), nil
}

func compileFormatter(ref any, formatters map[string]any) (*formatter.Template, error) {
	if ref == nil {
		return formatter.Compile(defaultMessageFormat, "")
	}
	name, ok := ref.(string)
	if !ok {
		return nil, errors.Errorf("formatter reference %v is not a name", ref)
	}
	fm, ok := asMap(formatters[name])
	if !ok {
		return nil, errors.Errorf("unknown formatter %q", name)
	}

	format, _ := fm["format"].(string)
	if format == "" {
		format = defaultMessageFormat
	}
	dateFormat, _ := fm["datefmt"].(string)

	tmpl, err := formatter.Compile(format, dateFormat)
	if err != nil {
		return nil, errors.Wrapf(err, "formatter %q", name)
	}
	return tmpl, nil
}

// streamSyncer exposes a Stream's Flush as zap's Sync
type streamSyncer struct {
	handler.Stream
}

func (s streamSyncer) Sync() error {
	return s.Flush()
}

func (l *Logger) streamSink(v any) (zapcore.WriteSyncer, error) {
	var w io.Writer
	switch s := v.(type) {
	case nil:
		// A stream handler without a stream writes to stderr
		w = os.Stderr
	case string:
		if path, ok := strings.CutPrefix(s, handler.FileRefPrefix); ok {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, errors.Wrap(err, "open stream file")
			}
			l.closers = append(l.closers, f)
			return f, nil
		}
		resolved, err := handler.ResolveStream(s)
		if err != nil {
			return nil, err
		}
		w = resolved
	case io.Writer:
		w = s
	default:
		return nil, errors.Errorf("stream %T is not a writer", v)
	}

	s, ok := handler.AsStream(w)
	if !ok {
		return nil, &core.TypeMismatchError{Field: "StreamHandler.stream", Expected: "Stream", Actual: typeName(w)}
	}
	if ws, ok := w.(zapcore.WriteSyncer); ok {
		return ws, nil
	}
	return streamSyncer{s}, nil
}

func (l *Logger) fileSink(hm map[string]any) (zapcore.WriteSyncer, error) {
	filename, _ := hm["filename"].(string)
	if filename == "" {
		return nil, &core.PathError{Info: "empty filename", Path: filename}
	}

	flags := os.O_CREATE | os.O_WRONLY
	mode, _ := hm["mode"].(string)
	switch mode {
	case "w":
		flags |= os.O_TRUNC
	case "a", "":
		flags |= os.O_APPEND
	default:
		return nil, errors.Errorf("unsupported file mode %q", mode)
	}

	if enc, ok := hm["encoding"].(string); ok {
		switch strings.ToLower(strings.ReplaceAll(enc, "-", "")) {
		case "utf8", "":
		default:
			return nil, errors.Errorf("unsupported encoding %q", enc)
		}
	}

	f, err := os.OpenFile(filename, flags, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	l.closers = append(l.closers, f)
	return f, nil
}
