package logger

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/philipp01105/logconf/core"
)

// The helpers below accept both the in-memory types Render produces
// and the generic types encoding/json and yaml.v3 decode into.

func section(config map[string]any, key string) (map[string]any, error) {
	v, ok := config[key]
	if !ok {
		return map[string]any{}, nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, errors.Errorf("%s: expected a map, got %T", key, v)
	}
	return m, nil
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func levelOf(v any) (core.Level, error) {
	switch l := v.(type) {
	case nil:
		return core.NotSetLevel, nil
	case string:
		return core.ParseLevel(l)
	case core.Level:
		if !l.Valid() {
			return core.NotSetLevel, &core.InvalidLevelError{Value: l.String()}
		}
		return l, nil
	default:
		return core.NotSetLevel, &core.InvalidLevelError{Value: fmt.Sprint(v)}
	}
}

func stringList(v any) ([]string, error) {
	switch l := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return l, nil
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Errorf("expected a handler name, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.Errorf("expected a list of handler names, got %T", v)
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
