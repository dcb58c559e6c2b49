package logconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"github.com/philipp01105/logconf/core"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "audit.log")

	doc := `
formatters:
  - name: brief
    format: "%(levelname)s: %(message)s"
    datefmt: ""
  - name: plain
handlers:
  - name: console
    class: stream
    formatter: brief
    level: INFO
    stream: stderr
  - name: audit
    class: logging.FileHandler
    level: WARNING
    filename: ` + filename + `
root:
  level: DEBUG
  handlers: [console, audit]
`

	c, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	m := c.Render()
	wantFormatters := map[string]any{
		"Default": map[string]any{
			"format":  "[%(asctime)s][%(name)s][%(levelname)s]: %(message)s",
			"datefmt": "%Y-%m-%d %H:%M:%S",
		},
		"brief": map[string]any{"format": "%(levelname)s: %(message)s", "datefmt": ""},
		"plain": map[string]any{
			"format":  "[%(asctime)s][%(name)s][%(levelname)s]: %(message)s",
			"datefmt": "%Y-%m-%d %H:%M:%S",
		},
	}
	if diff := cmp.Diff(wantFormatters, m["formatters"]); diff != "" {
		t.Errorf("formatters mismatch (-want +got):\n%s", diff)
	}

	console, ok := c.Handler("console")
	if !ok || console.Stream() != os.Stderr || console.Level() != core.InfoLevel {
		t.Errorf("console handler = %+v", console)
	}
	audit, ok := c.Handler("audit")
	if !ok || audit.Filename() != filename || audit.Formatter().Name() != DefaultName {
		t.Errorf("audit handler = %+v", audit)
	}

	wantRoot := map[string]any{"level": "DEBUG", "handlers": []string{"console", "audit"}}
	if diff := cmp.Diff(wantRoot, m["root"]); diff != "" {
		t.Errorf("root mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(defaultRender(), c.Render(), sameFile); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("formatters:\n  - name: x\n    colour: red\n"))
	if err == nil || !strings.Contains(err.Error(), "decode logging document") {
		t.Fatalf("Load() error = %v, want decode error", err)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	doc := `
formatters:
  - format: "%(message)s"
handlers:
  - name: a
    class: socket
  - name: b
    class: stream
    level: warning
  - name: c
    class: stream
    stream: stdin
  - name: d
    class: file
    filename: /definitely/not/here/app.log
root:
  level: LOUD
`
	_, err := Load(strings.NewReader(doc))
	if err == nil {
		t.Fatal("Load() expected error")
	}

	errs := multierr.Errors(err)
	if len(errs) != 6 {
		t.Fatalf("Load() returned %d errors, want 6:\n%s", len(errs), core.Describe(err))
	}

	wantPrefix := []string{"formatters[0]", "handlers[0]", "handlers[1]", "handlers[2]", "handler \"d\"", "root"}
	for i, prefix := range wantPrefix {
		if !strings.HasPrefix(errs[i].Error(), prefix) {
			t.Errorf("errs[%d] = %q, want prefix %q", i, errs[i], prefix)
		}
	}

	var levelErr *core.InvalidLevelError
	if !errors.As(errs[2], &levelErr) || levelErr.Value != "warning" {
		t.Errorf("errs[2] = %v, want invalid level warning", errs[2])
	}
	var notFound *core.PathNotFoundError
	if !errors.As(errs[4], &notFound) {
		t.Errorf("errs[4] = %v, want *core.PathNotFoundError", errs[4])
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	doc := "root:\n  level: ERROR\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if c.Root().Level() != core.ErrorLevel {
		t.Errorf("root level = %v, want ERROR", c.Root().Level())
	}
	// Without a handlers list the default root handler stays
	if diff := cmp.Diff([]string{DefaultName}, c.Root().Render()["handlers"]); diff != "" {
		t.Errorf("root handlers mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) expected error")
	}
}

func TestLoad_RequiredFields(t *testing.T) {
	doc := `
formatters:
  - format: "%(message)s"
handlers:
  - formatter: Default
`
	_, err := Load(strings.NewReader(doc))
	if err == nil {
		t.Fatal("Load() expected error")
	}

	var got []string
	for _, e := range multierr.Errors(err) {
		got = append(got, e.Error())
	}
	want := []string{
		"formatters[0]: name is required",
		"handlers[0]: name is required",
		"handlers[0]: class is required",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}
