package formatter

const (
	// DefaultFormat is the message template of the "Default" formatter
	DefaultFormat = "[%(asctime)s][%(name)s][%(levelname)s]: %(message)s"
	// DefaultDateFormat is the strftime timestamp template of the "Default" formatter
	DefaultDateFormat = "%Y-%m-%d %H:%M:%S"
)

// Formatter holds the message and timestamp templates of a named formatter
type Formatter struct {
	name       string
	format     string
	dateFormat string
}

// New creates a formatter with explicit templates
func New(name, format, dateFormat string) *Formatter {
	return &Formatter{
		name:       name,
		format:     format,
		dateFormat: dateFormat,
	}
}

// NewDefault creates a formatter using DefaultFormat and DefaultDateFormat
func NewDefault(name string) *Formatter {
	return New(name, DefaultFormat, DefaultDateFormat)
}

// Name returns the registry key of the formatter
func (f *Formatter) Name() string {
	return f.name
}

// Format returns the message template
func (f *Formatter) Format() string {
	return f.format
}

// SetFormat replaces the message template
func (f *Formatter) SetFormat(format string) {
	f.format = format
}

// DateFormat returns the strftime timestamp template
func (f *Formatter) DateFormat() string {
	return f.dateFormat
}

// SetDateFormat replaces the timestamp template
func (f *Formatter) SetDateFormat(dateFormat string) {
	f.dateFormat = dateFormat
}

// Render returns the formatter section of the configuration map
func (f *Formatter) Render() map[string]any {
	return map[string]any{
		"format":  f.format,
		"datefmt": f.dateFormat,
	}
}

// Compile parses both templates for use by a logging runtime
func (f *Formatter) Compile() (*Template, error) {
	return Compile(f.format, f.dateFormat)
}
