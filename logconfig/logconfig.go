package logconfig

import (
	"os"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/formatter"
	"github.com/philipp01105/logconf/handler"
)

const (
	// Version is the schema version of the rendered configuration
	Version = 1
	// DisableExistingLoggers is always false: applying a configuration
	// leaves loggers created before it enabled.
	DisableExistingLoggers = false

	// DefaultName is the name of the formatter and handler every LogConfig starts with
	DefaultName = "Default"
)

// LogConfig owns the formatters and handlers of a configuration and
// the Root that references them.
type LogConfig struct {
	formatters *registry[*formatter.Formatter]
	handlers   *registry[*handler.Handler]
	root       *Root
}

// New creates a configuration holding a "Default" formatter, a
// "Default" stream handler on standard output at NOTSET, and a root
// dispatching to that handler.
func New() *LogConfig {
	c := &LogConfig{
		formatters: newRegistry[*formatter.Formatter](),
		handlers:   newRegistry[*handler.Handler](),
	}

	f := formatter.NewDefault(DefaultName)
	c.formatters.put(f)

	// Cannot fail: the formatter is non-nil, NOTSET is valid and
	// *os.File flushes through Sync.
	h, err := handler.NewStreamHandler(DefaultName, f, core.NotSetLevel, os.Stdout)
	if err != nil {
		panic(err)
	}
	c.handlers.put(h)

	c.root = NewRoot()
	c.root.handlers.put(h)
	return c
}

// AddFormatter registers f under its own name, replacing any formatter
// with the same name.
func (c *LogConfig) AddFormatter(f *formatter.Formatter) error {
	if f == nil {
		return &core.TypeMismatchError{Field: "LogConfig.formatters", Expected: "Formatter", Actual: "nil"}
	}
	c.formatters.put(f)
	return nil
}

// Formatter looks up a formatter by name
func (c *LogConfig) Formatter(name string) (*formatter.Formatter, bool) {
	return c.formatters.get(name)
}

// Formatters returns the formatters in registration order
func (c *LogConfig) Formatters() []*formatter.Formatter {
	return c.formatters.values()
}

// AddHandler registers h under its own name, replacing any handler
// with the same name.
func (c *LogConfig) AddHandler(h *handler.Handler) error {
	if h == nil {
		return &core.TypeMismatchError{Field: "LogConfig.handlers", Expected: "Handler", Actual: "nil"}
	}
	c.handlers.put(h)
	return nil
}

// Handler looks up a handler by name
func (c *LogConfig) Handler(name string) (*handler.Handler, bool) {
	return c.handlers.get(name)
}

// Handlers returns the handlers in registration order
func (c *LogConfig) Handlers() []*handler.Handler {
	return c.handlers.values()
}

// Root returns the root dispatcher
func (c *LogConfig) Root() *Root {
	return c.root
}

// SetRoot replaces the root dispatcher
func (c *LogConfig) SetRoot(r *Root) error {
	if r == nil {
		return &core.TypeMismatchError{Field: "LogConfig.root", Expected: "Root", Actual: "nil"}
	}
	c.root = r
	return nil
}

// Render returns the complete configuration map. Stream handlers carry
// their writer under "stream"; use Portable for a serializable form.
func (c *LogConfig) Render() map[string]any {
	formatters := make(map[string]any, c.formatters.len())
	for _, f := range c.formatters.values() {
		formatters[f.Name()] = f.Render()
	}

	handlers := make(map[string]any, c.handlers.len())
	for _, h := range c.handlers.values() {
		handlers[h.Name()] = h.Render()
	}

	return map[string]any{
		"version":                  Version,
		"disable_existing_loggers": DisableExistingLoggers,
		"formatters":               formatters,
		"handlers":                 handlers,
		"root":                     c.root.Render(),
	}
}
