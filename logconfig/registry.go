package logconfig

type named interface {
	Name() string
}

// registry maps names to values and remembers first-registration order.
// Putting an existing name replaces the value in place.
type registry[T named] struct {
	order []string
	items map[string]T
}

func newRegistry[T named]() *registry[T] {
	return &registry[T]{items: make(map[string]T)}
}

func (r *registry[T]) put(v T) {
	name := v.Name()
	if _, ok := r.items[name]; !ok {
		r.order = append(r.order, name)
	}
	r.items[name] = v
}

func (r *registry[T]) get(name string) (T, bool) {
	v, ok := r.items[name]
	return v, ok
}

func (r *registry[T]) names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *registry[T]) values() []T {
	out := make([]T, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.items[name])
	}
	return out
}

func (r *registry[T]) len() int {
	return len(r.order)
}
