package core

import (
	"strconv"
)

// Level represents the severity of a log record
type Level int8

const (
	// NotSetLevel means no filtering; the runtime inherits or passes everything
	NotSetLevel Level = 0
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// InfoLevel for general informational messages
	InfoLevel Level = 20
	// WarningLevel for warning messages
	WarningLevel Level = 30
	// ErrorLevel for error messages
	ErrorLevel Level = 40
	// CriticalLevel for failures the program may not survive
	CriticalLevel Level = 50
)

// levels lists every recognized severity in the order the
// configuration schema documents them.
var levels = [...]Level{
	DebugLevel,
	InfoLevel,
	WarningLevel,
	ErrorLevel,
	CriticalLevel,
	NotSetLevel,
}

// Levels returns all recognized severities
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// String returns the schema name of the level
func (l Level) String() string {
	switch l {
	case NotSetLevel:
		return "NOTSET"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Valid reports whether l is one of the six recognized severities
func (l Level) Valid() bool {
	switch l {
	case NotSetLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &InvalidLevelError{Value: l.String()}
	}
	return []byte(l.String()), nil
}

// ParseLevel converts a schema name to a Level.
// Matching is exact: "warning" or "WARN" are rejected.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "NOTSET":
		return NotSetLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL":
		return CriticalLevel, nil
	default:
		return NotSetLevel, &InvalidLevelError{Value: s}
	}
}
