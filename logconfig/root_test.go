package logconfig

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/formatter"
	"github.com/philipp01105/logconf/handler"
)

func mustStreamHandler(t *testing.T, name string, level core.Level) *handler.Handler {
	t.Helper()
	h, err := handler.NewStreamHandler(name, formatter.NewDefault("Default"), level, os.Stdout)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestNewRoot(t *testing.T) {
	r := NewRoot()
	if r.Level() != core.NotSetLevel {
		t.Errorf("Level() = %v, want NOTSET", r.Level())
	}

	want := map[string]any{"level": "NOTSET", "handlers": []string{}}
	if diff := cmp.Diff(want, r.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_AddHandlerReplacesInPlace(t *testing.T) {
	r := NewRoot()
	a := mustStreamHandler(t, "a", core.InfoLevel)
	b := mustStreamHandler(t, "b", core.InfoLevel)
	a2 := mustStreamHandler(t, "a", core.ErrorLevel)

	for _, h := range []*handler.Handler{a, b, a2} {
		if err := r.AddHandler(h); err != nil {
			t.Fatal(err)
		}
	}

	got := r.Handlers()
	if len(got) != 2 || got[0] != a2 || got[1] != b {
		t.Errorf("Handlers() = %v, want [a2 b]", got)
	}
	if diff := cmp.Diff([]string{"a", "b"}, r.Render()["handlers"]); diff != "" {
		t.Errorf("Render()[handlers] mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_RenderDeterministic(t *testing.T) {
	r := NewRoot()
	for _, name := range []string{"c", "b", "a", "d"} {
		if err := r.AddHandler(mustStreamHandler(t, name, core.InfoLevel)); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"c", "b", "a", "d"}
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(want, r.Render()["handlers"]); diff != "" {
			t.Fatalf("run %d: Render()[handlers] mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestRoot_Errors(t *testing.T) {
	r := NewRoot()

	var mismatch *core.TypeMismatchError
	if err := r.AddHandler(nil); !errors.As(err, &mismatch) {
		t.Errorf("AddHandler(nil) error = %v, want *core.TypeMismatchError", err)
	}

	var levelErr *core.InvalidLevelError
	if err := r.SetLevel(core.Level(5)); !errors.As(err, &levelErr) {
		t.Errorf("SetLevel(5) error = %v, want *core.InvalidLevelError", err)
	}
	if r.Level() != core.NotSetLevel {
		t.Errorf("Level() = %v after rejected SetLevel", r.Level())
	}
}
