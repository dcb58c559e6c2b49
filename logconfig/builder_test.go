package logconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"github.com/philipp01105/logconf/core"
)

func TestBuilder(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "app.log")

	c, err := NewBuilder().
		WithFormatter("brief", "%(levelname)s: %(message)s", "%H:%M:%S").
		WithStreamHandler("console", "brief", core.InfoLevel, os.Stderr).
		WithFileHandler("file", DefaultName, core.DebugLevel, filename).
		WithRootLevel(core.DebugLevel).
		WithRootHandlers("console", "file").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	m := c.Render()
	want := map[string]any{
		"Default": map[string]any{
			"class":     "logging.StreamHandler",
			"formatter": "Default",
			"level":     "NOTSET",
			"stream":    os.Stdout,
		},
		"console": map[string]any{
			"class":     "logging.StreamHandler",
			"formatter": "brief",
			"level":     "INFO",
			"stream":    os.Stderr,
		},
		"file": map[string]any{
			"class":     "logging.FileHandler",
			"formatter": "Default",
			"level":     "DEBUG",
			"filename":  filename,
			"mode":      "w",
			"encoding":  "utf-8",
		},
	}
	if diff := cmp.Diff(want, m["handlers"], sameFile); diff != "" {
		t.Errorf("handlers mismatch (-want +got):\n%s", diff)
	}

	wantRoot := map[string]any{"level": "DEBUG", "handlers": []string{"console", "file"}}
	if diff := cmp.Diff(wantRoot, m["root"]); diff != "" {
		t.Errorf("root mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_RootLevelAfterHandlers(t *testing.T) {
	c, err := NewBuilder().
		WithRootHandlers(DefaultName).
		WithRootLevel(core.ErrorLevel).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if c.Root().Level() != core.ErrorLevel {
		t.Errorf("root level = %v, want ERROR", c.Root().Level())
	}
}

func TestBuilder_CollectsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewBuilder().
		WithStreamHandler("console", "missing", core.InfoLevel, os.Stdout).
		WithFileHandler("file", DefaultName, core.InfoLevel, filepath.Join(dir, "nope", "app.log")).
		WithStreamHandler("loud", DefaultName, core.Level(77), os.Stdout).
		WithRootHandlers(DefaultName, "ghost").
		Build()
	if err == nil {
		t.Fatal("Build() expected error")
	}

	errs := multierr.Errors(err)
	if len(errs) != 4 {
		t.Fatalf("Build() returned %d errors, want 4: %v", len(errs), err)
	}

	var mismatch *core.TypeMismatchError
	if !errors.As(errs[0], &mismatch) || mismatch.Actual != `unknown "missing"` {
		t.Errorf("errs[0] = %v, want unknown formatter mismatch", errs[0])
	}
	var notFound *core.PathNotFoundError
	if !errors.As(errs[1], &notFound) {
		t.Errorf("errs[1] = %v, want *core.PathNotFoundError", errs[1])
	}
	var levelErr *core.InvalidLevelError
	if !errors.As(errs[2], &levelErr) {
		t.Errorf("errs[2] = %v, want *core.InvalidLevelError", errs[2])
	}
	if !errors.As(errs[3], &mismatch) || mismatch.Field != "Root.handlers" {
		t.Errorf("errs[3] = %v, want unknown root handler mismatch", errs[3])
	}
}

func TestBuilder_FailedRootHandlersKeepRoot(t *testing.T) {
	b := NewBuilder().WithRootHandlers("ghost")
	if b.config.Root().Handlers()[0].Name() != DefaultName {
		t.Error("failed WithRootHandlers replaced the root")
	}
	if _, err := b.Build(); err == nil {
		t.Error("Build() expected error")
	}
}
