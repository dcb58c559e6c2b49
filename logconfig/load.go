package logconfig

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/logconf/core"
	"github.com/philipp01105/logconf/formatter"
	"github.com/philipp01105/logconf/handler"
)

// Document is the declarative YAML form of a configuration. Its
// entries are applied on top of the defaults New installs.
type Document struct {
	Formatters []FormatterSpec `yaml:"formatters"`
	Handlers   []HandlerSpec   `yaml:"handlers"`
	Root       *RootSpec       `yaml:"root"`
}

// FormatterSpec declares a formatter. Omitted templates fall back to the defaults.
type FormatterSpec struct {
	Name       string  `yaml:"name" validate:"required"`
	Format     string  `yaml:"format"`
	DateFormat *string `yaml:"datefmt"`
}

// HandlerSpec declares a handler
type HandlerSpec struct {
	Name string `yaml:"name" validate:"required"`
	// Class is "stream" or "file", or the matching class tag
	Class     string `yaml:"class" validate:"required"`
	Formatter string `yaml:"formatter"` // default: "Default"
	Level     string `yaml:"level"`     // default: NOTSET
	Stream    string `yaml:"stream"`    // stream only, default: stdout
	Filename  string `yaml:"filename"`  // file only
}

// RootSpec declares the root dispatcher. When present, its handler
// list replaces the default one.
type RootSpec struct {
	Level    string   `yaml:"level"`
	Handlers []string `yaml:"handlers"`
}

// Load decodes a YAML document and builds the configuration it
// describes. Unknown keys are rejected. An empty document yields the
// defaults.
func Load(r io.Reader) (*LogConfig, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode logging document")
	}
	return doc.Build()
}

// LoadFile loads a YAML document from path
func LoadFile(path string) (*LogConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open logging document")
	}
	defer f.Close()

	return Load(f)
}

// Build applies the document through a Builder
func (d *Document) Build() (*LogConfig, error) {
	b := NewBuilder()

	for i, fs := range d.Formatters {
		if err := checkSpec(fs); err != nil {
			b.fail(err, "formatters[%d]", i)
			continue
		}
		format := fs.Format
		if format == "" {
			format = formatter.DefaultFormat
		}
		dateFormat := formatter.DefaultDateFormat
		if fs.DateFormat != nil {
			dateFormat = *fs.DateFormat
		}
		b.WithFormatter(fs.Name, format, dateFormat)
	}

	for i, hs := range d.Handlers {
		if err := checkSpec(hs); err != nil {
			b.fail(err, "handlers[%d]", i)
			continue
		}
		if err := hs.apply(b); err != nil {
			b.fail(err, "handlers[%d]", i)
		}
	}

	if d.Root != nil {
		if d.Root.Level != "" {
			level, err := core.ParseLevel(d.Root.Level)
			if err != nil {
				b.fail(err, "root")
			} else {
				b.WithRootLevel(level)
			}
		}
		if d.Root.Handlers != nil {
			b.WithRootHandlers(d.Root.Handlers...)
		}
	}

	return b.Build()
}

func (hs HandlerSpec) apply(b *Builder) error {
	formatterName := hs.Formatter
	if formatterName == "" {
		formatterName = DefaultName
	}

	level := core.NotSetLevel
	if hs.Level != "" {
		var err error
		if level, err = core.ParseLevel(hs.Level); err != nil {
			return err
		}
	}

	switch strings.ToLower(hs.Class) {
	case "stream", strings.ToLower(handler.StreamKind.Class()):
		if hs.Filename != "" {
			return errors.Errorf("filename is not valid for a stream handler")
		}
		ref := hs.Stream
		if ref == "" {
			ref = handler.StdoutRef
		}
		w, err := handler.ResolveStream(ref)
		if err != nil {
			return err
		}
		b.WithStreamHandler(hs.Name, formatterName, level, w)
	case "file", strings.ToLower(handler.FileKind.Class()):
		if hs.Stream != "" {
			return errors.Errorf("stream is not valid for a file handler")
		}
		b.WithFileHandler(hs.Name, formatterName, level, hs.Filename)
	default:
		return errors.Errorf("unknown class %q", hs.Class)
	}
	return nil
}
