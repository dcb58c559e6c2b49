package logconfig

import (
	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/handler"
)

// Root is the top-level dispatcher: which handlers receive records
// and the minimum severity it lets through.
type Root struct {
	level    core.Level
	handlers *registry[*handler.Handler]
}

// NewRoot creates a root at NOTSET with no handlers
func NewRoot() *Root {
	return &Root{
		level:    core.NotSetLevel,
		handlers: newRegistry[*handler.Handler](),
	}
}

// Level returns the root level
func (r *Root) Level() core.Level {
	return r.level
}

// SetLevel replaces the root level
func (r *Root) SetLevel(level core.Level) error {
	if !level.Valid() {
		return &core.InvalidLevelError{Value: level.String()}
	}
	r.level = level
	return nil
}

// AddHandler registers h under its own name. A handler with the same
// name is replaced and keeps its position.
func (r *Root) AddHandler(h *handler.Handler) error {
	if h == nil {
		return &core.TypeMismatchError{Field: "Root.handlers", Expected: "Handler", Actual: "nil"}
	}
	r.handlers.put(h)
	return nil
}

// Handlers returns the registered handlers in registration order
func (r *Root) Handlers() []*handler.Handler {
	return r.handlers.values()
}

// Render returns the root section of the configuration map
func (r *Root) Render() map[string]any {
	return map[string]any{
		"level":    r.level.String(),
		"handlers": r.handlers.names(),
	}
}
