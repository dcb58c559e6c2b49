package handler

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/formatter"
)

// Stream is a writer that can push buffered output to its destination
type Stream interface {
	io.Writer
	Flush() error
}

type syncer interface {
	io.Writer
	Sync() error
}

// syncStream adapts writers that flush through Sync, like *os.File
type syncStream struct {
	syncer
}

func (s syncStream) Flush() error {
	return s.Sync()
}

// AsStream reports whether w exposes both write and flush, and returns
// it as a Stream. Writers with a Sync method qualify. Nil writers,
// including typed nil pointers, do not.
func AsStream(w io.Writer) (Stream, bool) {
	if isNil(w) {
		return nil, false
	}
	switch s := w.(type) {
	case Stream:
		return s, true
	case syncer:
		return syncStream{s}, true
	default:
		return nil, false
	}
}

// NewStreamHandler creates a handler writing to an open stream
func NewStreamHandler(name string, f *formatter.Formatter, level core.Level, w io.Writer) (*Handler, error) {
	h, err := newHandler(name, StreamKind, f, level)
	if err != nil {
		return nil, err
	}
	if err := h.SetStream(w); err != nil {
		return nil, err
	}
	return h, nil
}

// Stream returns the writer of a stream handler, nil for other kinds
func (h *Handler) Stream() io.Writer {
	return h.stream
}

// SetStream replaces the stream. The writer must also be flushable;
// anything else is rejected and the previous stream is kept.
func (h *Handler) SetStream(w io.Writer) error {
	if h.kind != StreamKind {
		return h.wrongKind("stream", StreamKind)
	}
	if isNil(w) {
		return &core.TypeMismatchError{Field: "StreamHandler.stream", Expected: "Stream", Actual: "nil"}
	}
	if _, ok := AsStream(w); !ok {
		return &core.TypeMismatchError{
			Field:    "StreamHandler.stream",
			Expected: "Stream",
			Actual:   fmt.Sprintf("%T", w),
		}
	}
	h.stream = w
	return nil
}

// isNil reports whether w is nil or holds a nil pointer, map, slice,
// channel or func
func isNil(w io.Writer) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

const (
	// StdoutRef names the process standard output
	StdoutRef = "ext://sys.stdout"
	// StderrRef names the process standard error
	StderrRef = "ext://sys.stderr"
	// FileRefPrefix prefixes the ref of any other *os.File
	FileRefPrefix = "file://"
)

// StreamRef returns a portable name for w, used when the configuration
// is serialized instead of handed over in memory. Nil writers yield "".
//
// ResolveStream only maps the standard stream refs back; FileRefPrefix
// refs name a path, which the logger package reopens in append mode.
func StreamRef(w io.Writer) string {
	if isNil(w) {
		return ""
	}
	switch s := w.(type) {
	case *os.File:
		switch s {
		case os.Stdout:
			return StdoutRef
		case os.Stderr:
			return StderrRef
		}
		return FileRefPrefix + s.Name()
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%T", w)
	}
}

// ResolveStream maps a stream name back to a writer. It accepts the
// refs StreamRef produces for the standard streams, and the bare names
// "stdout" and "stderr".
func ResolveStream(ref string) (io.Writer, error) {
	switch strings.TrimPrefix(ref, "ext://sys.") {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, &core.TypeMismatchError{
			Field:    "StreamHandler.stream",
			Expected: "Stream",
			Actual:   fmt.Sprintf("unknown stream %q", ref),
		}
	}
}
