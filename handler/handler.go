package handler

import (
	"io"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/formatter"
)

// Kind selects the sink variant of a Handler
type Kind uint8

const (
	// StreamKind writes to an already open stream such as stdout
	StreamKind Kind = iota + 1
	// FileKind writes to a file the runtime opens by name
	FileKind
)

// Class returns the class tag a configuration loader dispatches on
func (k Kind) Class() string {
	switch k {
	case StreamKind:
		return "logging.StreamHandler"
	case FileKind:
		return "logging.FileHandler"
	default:
		return ""
	}
}

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case StreamKind:
		return "StreamHandler"
	case FileKind:
		return "FileHandler"
	default:
		return "Handler"
	}
}

// Handler is a named, formatted and level-filtered sink.
// It is a closed variant over Kind; only the payload of its own
// kind is ever set.
type Handler struct {
	name      string
	formatter *formatter.Formatter
	level     core.Level
	kind      Kind

	// StreamKind payload
	stream io.Writer

	// FileKind payload
	filename string
}

func newHandler(name string, kind Kind, f *formatter.Formatter, level core.Level) (*Handler, error) {
	h := &Handler{name: name, kind: kind}
	if err := h.SetFormatter(f); err != nil {
		return nil, err
	}
	if err := h.SetLevel(level); err != nil {
		return nil, err
	}
	return h, nil
}

// Name returns the registry key of the handler
func (h *Handler) Name() string {
	return h.name
}

// Kind returns the sink variant
func (h *Handler) Kind() Kind {
	return h.kind
}

// Formatter returns the shared formatter reference
func (h *Handler) Formatter() *formatter.Formatter {
	return h.formatter
}

// SetFormatter replaces the formatter reference. A nil formatter is
// rejected and the previous reference is kept.
func (h *Handler) SetFormatter(f *formatter.Formatter) error {
	if f == nil {
		return &core.TypeMismatchError{
			Field:    h.kind.String() + ".formatter",
			Expected: "Formatter",
			Actual:   "nil",
		}
	}
	h.formatter = f
	return nil
}

// Level returns the minimum severity the handler accepts
func (h *Handler) Level() core.Level {
	return h.level
}

// SetLevel replaces the level. Values outside the six severities are rejected.
func (h *Handler) SetLevel(level core.Level) error {
	if !level.Valid() {
		return &core.InvalidLevelError{Value: level.String()}
	}
	h.level = level
	return nil
}

// Render returns the handler section of the configuration map
func (h *Handler) Render() map[string]any {
	m := map[string]any{
		"class":     h.kind.Class(),
		"formatter": h.formatter.Name(),
		"level":     h.level.String(),
	}

	switch h.kind {
	case StreamKind:
		m["stream"] = h.stream
	case FileKind:
		m["filename"] = h.filename
		m["mode"] = FileMode
		m["encoding"] = FileEncoding
	}
	return m
}

func (h *Handler) wrongKind(field string, want Kind) error {
	return &core.TypeMismatchError{
		Field:    h.kind.String() + "." + field,
		Expected: want.String(),
		Actual:   h.kind.String(),
	}
}
