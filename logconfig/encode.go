package logconfig

import (
	"encoding/json"
	"io"

	"github.com/philipp01105/logconf/handler"
)

// Portable returns Render with every stream writer replaced by its
// StreamRef, so the map contains only strings, numbers, booleans,
// maps and slices.
func (c *LogConfig) Portable() map[string]any {
	m := c.Render()
	handlers := m["handlers"].(map[string]any)
	for name, v := range handlers {
		hm := v.(map[string]any)
		if w, ok := hm["stream"].(io.Writer); ok {
			hm["stream"] = handler.StreamRef(w)
		}
		handlers[name] = hm
	}
	return m
}

// MarshalJSON implements json.Marshaler using the portable form
func (c *LogConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Portable())
}

// MarshalYAML implements yaml.Marshaler using the portable form
func (c *LogConfig) MarshalYAML() (interface{}, error) {
	return c.Portable(), nil
}
