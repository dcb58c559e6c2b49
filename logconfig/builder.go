package logconfig

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/formatter"
	"github.com/philipp01105/logconf/handler"
)

// Builder provides a fluent API for assembling a LogConfig on top of
// the defaults New installs. Every step validates immediately; failed
// steps are skipped and their errors are returned together by Build.
type Builder struct {
	config *LogConfig
	err    error
}

// NewBuilder creates a builder starting from New()
func NewBuilder() *Builder {
	return &Builder{config: New()}
}

// WithFormatter registers a formatter, replacing one with the same name
func (b *Builder) WithFormatter(name, format, dateFormat string) *Builder {
	// AddFormatter only rejects nil
	_ = b.config.AddFormatter(formatter.New(name, format, dateFormat))
	return b
}

// WithStreamHandler registers a stream handler using a formatter
// already registered under formatterName.
func (b *Builder) WithStreamHandler(name, formatterName string, level core.Level, w io.Writer) *Builder {
	f, err := b.formatter(formatterName)
	if err == nil {
		var h *handler.Handler
		if h, err = handler.NewStreamHandler(name, f, level, w); err == nil {
			err = b.config.AddHandler(h)
		}
	}
	return b.fail(err, "handler %q", name)
}

// WithFileHandler registers a file handler using a formatter already
// registered under formatterName.
func (b *Builder) WithFileHandler(name, formatterName string, level core.Level, filename string) *Builder {
	f, err := b.formatter(formatterName)
	if err == nil {
		var h *handler.Handler
		if h, err = handler.NewFileHandler(name, f, level, filename); err == nil {
			err = b.config.AddHandler(h)
		}
	}
	return b.fail(err, "handler %q", name)
}

// WithRootLevel sets the level of the root dispatcher
func (b *Builder) WithRootLevel(level core.Level) *Builder {
	return b.fail(b.config.root.SetLevel(level), "root")
}

// WithRootHandlers replaces the root's handler set with the named
// handlers, keeping the root level. Unknown names fail the step and
// leave the root unchanged.
func (b *Builder) WithRootHandlers(names ...string) *Builder {
	root := NewRoot()
	root.level = b.config.root.level

	var errs error
	for _, name := range names {
		h, ok := b.config.Handler(name)
		if !ok {
			errs = multierr.Append(errs, &core.TypeMismatchError{
				Field:    "Root.handlers",
				Expected: "Handler",
				Actual:   fmt.Sprintf("unknown %q", name),
			})
			continue
		}
		errs = multierr.Append(errs, root.AddHandler(h))
	}
	if errs != nil {
		return b.fail(errs, "root")
	}
	return b.fail(b.config.SetRoot(root), "root")
}

// Build returns the configuration, or every error collected on the way
func (b *Builder) Build() (*LogConfig, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.config, nil
}

func (b *Builder) formatter(name string) (*formatter.Formatter, error) {
	f, ok := b.config.Formatter(name)
	if !ok {
		return nil, &core.TypeMismatchError{
			Field:    "Handler.formatter",
			Expected: "Formatter",
			Actual:   fmt.Sprintf("unknown %q", name),
		}
	}
	return f, nil
}

func (b *Builder) fail(err error, format string, args ...interface{}) *Builder {
	for _, e := range multierr.Errors(err) {
		b.err = multierr.Append(b.err, errors.Wrapf(e, format, args...))
	}
	return b
}
