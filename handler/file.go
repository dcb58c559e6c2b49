package handler

import (
	"os"
	"path/filepath"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/formatter"
)

const (
	// FileMode is the open mode of file handlers: write, truncating any previous content
	FileMode = "w"
	// FileEncoding is the text encoding of file handlers
	FileEncoding = "utf-8"
)

// NewFileHandler creates a handler writing to the named file.
// The parent directory must already exist.
func NewFileHandler(name string, f *formatter.Formatter, level core.Level, filename string) (*Handler, error) {
	h, err := newHandler(name, FileKind, f, level)
	if err != nil {
		return nil, err
	}
	if err := h.SetFilename(filename); err != nil {
		return nil, err
	}
	return h, nil
}

// Filename returns the absolute target path of a file handler, empty for other kinds
func (h *Handler) Filename() string {
	return h.filename
}

// SetFilename replaces the target path. The path is made absolute and
// its parent directory is checked now rather than when the runtime
// opens the file. On error the previous path is kept.
func (h *Handler) SetFilename(filename string) error {
	if h.kind != FileKind {
		return h.wrongKind("filename", FileKind)
	}
	if filename == "" {
		return &core.PathError{Info: "empty filename", Path: filename}
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return &core.PathError{Info: "cannot resolve path", Path: filename}
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return &core.PathError{Info: "path is a directory", Path: abs}
	}

	dir := filepath.Dir(abs)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return &core.PathNotFoundError{Path: abs, Dir: dir}
	}

	h.filename = abs
	return nil
}
