package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logconf/core"
)

// fromZap maps a zap level onto the configuration severities
func fromZap(l zapcore.Level) core.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return core.DebugLevel
	case l == zapcore.InfoLevel:
		return core.InfoLevel
	case l == zapcore.WarnLevel:
		return core.WarningLevel
	case l == zapcore.ErrorLevel:
		return core.ErrorLevel
	default:
		// DPanic, Panic and Fatal
		return core.CriticalLevel
	}
}

// threshold enables records at or above both the root and the handler level
func threshold(root, handler core.Level) zap.LevelEnablerFunc {
	floor := max(root, handler)
	return func(l zapcore.Level) bool {
		return fromZap(l) >= floor
	}
}
