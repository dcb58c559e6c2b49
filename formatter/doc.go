// Package formatter describes how log records are rendered.
//
// A Formatter is a named pair of templates: a message template in the
// %(attribute)s style and a strftime timestamp template. Render turns
// it into the two-field map ({format, datefmt}) expected under the
// "formatters" key of a dictionary logging configuration. Setters do
// no validation; templates are only checked when compiled.
//
// Compile turns the templates into a Template for runtimes that need
// to produce actual lines. Both templates are parsed once into
// segments, and AppendRecord renders into a caller-provided byte slice
// using Append-style functions (time.AppendFormat, strconv.AppendInt)
// so that the common path does not allocate intermediate strings.
package formatter
