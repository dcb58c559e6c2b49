package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/logconf/core"
)

// Record is the data a Template renders
type Record struct {
	Time     time.Time
	Name     string
	Level    core.Level
	Message  string
	File     string
	Line     int
	Function string
	// Fields are appended as " key=value" in sorted key order
	Fields map[string]any
}

type attribute uint8

const (
	attrLiteral attribute = iota
	attrAsctime
	attrCreated
	attrName
	attrLevelname
	attrLevelno
	attrMessage
	attrPathname
	attrFilename
	attrModule
	attrLineno
	attrFuncName
	attrProcess
)

var attributes = map[string]attribute{
	"asctime":   attrAsctime,
	"created":   attrCreated,
	"name":      attrName,
	"levelname": attrLevelname,
	"levelno":   attrLevelno,
	"message":   attrMessage,
	"pathname":  attrPathname,
	"filename":  attrFilename,
	"module":    attrModule,
	"lineno":    attrLineno,
	"funcName":  attrFuncName,
	"process":   attrProcess,
}

var pid = os.Getpid()

type segment struct {
	attr    attribute
	literal string
	// flags holds the printf flags and width between ')' and the verb
	flags string
	verb  byte
}

// Template is a compiled formatter, safe for concurrent use
type Template struct {
	segments []segment
	clock    []timeSegment
}

// Compile parses a %(attribute)s message template and a strftime date template
func Compile(format, dateFormat string) (*Template, error) {
	segments, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	clock, err := parseDateFormat(dateFormat)
	if err != nil {
		return nil, err
	}
	return &Template{segments: segments, clock: clock}, nil
}

func parseFormat(format string) ([]segment, error) {
	var (
		segments []segment
		lit      strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			segments = append(segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); {
		j := strings.IndexByte(format[i:], '%')
		if j < 0 {
			lit.WriteString(format[i:])
			break
		}
		lit.WriteString(format[i : i+j])
		i += j

		if i+1 >= len(format) {
			return nil, fmt.Errorf("format %q: dangling %% at offset %d", format, i)
		}
		if format[i+1] == '%' {
			lit.WriteByte('%')
			i += 2
			continue
		}
		if format[i+1] != '(' {
			return nil, fmt.Errorf("format %q: expected %%( at offset %d", format, i)
		}

		end := strings.IndexByte(format[i+2:], ')')
		if end < 0 {
			return nil, fmt.Errorf("format %q: unterminated %%( at offset %d", format, i)
		}
		key := format[i+2 : i+2+end]
		attr, ok := attributes[key]
		if !ok {
			return nil, fmt.Errorf("format %q: unknown attribute %q", format, key)
		}

		k := i + 2 + end + 1
		start := k
		for k < len(format) && strings.IndexByte("-+ #0123456789.", format[k]) >= 0 {
			k++
		}
		if k >= len(format) || strings.IndexByte("sdfr", format[k]) < 0 {
			return nil, fmt.Errorf("format %q: missing conversion after %%(%s)", format, key)
		}

		flush()
		segments = append(segments, segment{
			attr:  attr,
			flags: format[start:k],
			verb:  format[k],
		})
		i = k + 1
	}
	flush()
	return segments, nil
}

// AppendRecord appends the rendered record to dst and returns the
// extended slice. No trailing newline is written.
func (t *Template) AppendRecord(dst []byte, r Record) []byte {
	for _, s := range t.segments {
		switch s.attr {
		case attrLiteral:
			dst = append(dst, s.literal...)
		case attrAsctime:
			if s.flags == "" && s.verb == 's' {
				dst = t.appendTime(dst, r.Time)
				continue
			}
			dst = s.appendValue(dst, string(t.appendTime(nil, r.Time)))
		default:
			dst = s.appendValue(dst, t.value(s.attr, r))
		}
	}

	if len(r.Fields) > 0 {
		keys := make([]string, 0, len(r.Fields))
		for k := range r.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = append(dst, ' ')
			dst = append(dst, k...)
			dst = append(dst, '=')
			dst = fmt.Append(dst, r.Fields[k])
		}
	}
	return dst
}

// FormatTime renders t with the compiled date template
func (t *Template) FormatTime(tm time.Time) string {
	return string(t.appendTime(nil, tm))
}

func (t *Template) value(attr attribute, r Record) any {
	switch attr {
	case attrCreated:
		return float64(r.Time.UnixNano()) / float64(time.Second)
	case attrName:
		return r.Name
	case attrLevelname:
		return r.Level.String()
	case attrLevelno:
		return int(r.Level)
	case attrMessage:
		return r.Message
	case attrPathname:
		return r.File
	case attrFilename:
		return filepath.Base(r.File)
	case attrModule:
		base := filepath.Base(r.File)
		return strings.TrimSuffix(base, filepath.Ext(base))
	case attrLineno:
		return r.Line
	case attrFuncName:
		return r.Function
	case attrProcess:
		return pid
	default:
		return ""
	}
}

func (s segment) appendValue(dst []byte, v any) []byte {
	switch s.verb {
	case 'd':
		switch n := v.(type) {
		case int:
			if s.flags == "" {
				return strconv.AppendInt(dst, int64(n), 10)
			}
			return fmt.Appendf(dst, "%"+s.flags+"d", n)
		case float64:
			return fmt.Appendf(dst, "%"+s.flags+"d", int64(n))
		}
	case 'f':
		switch n := v.(type) {
		case float64:
			return fmt.Appendf(dst, "%"+s.flags+"f", n)
		case int:
			return fmt.Appendf(dst, "%"+s.flags+"f", float64(n))
		}
	case 'r':
		if str, ok := v.(string); ok {
			return fmt.Appendf(dst, "%"+s.flags+"s", "'"+str+"'")
		}
	}

	if str, ok := v.(string); ok && s.flags == "" {
		return append(dst, str...)
	}
	return fmt.Appendf(dst, "%"+s.flags+"v", v)
}
