package capture

import (
	"strings"

	"github.com/roadrunner-server/errors"
	"go.uber.org/zap/zapcore"
)

// ParseSeverity maps a severity name from the Verbose/Information vocabulary
// onto a zap level. Zap's own level names are accepted too.
func ParseSeverity(name string) (zapcore.Level, error) {
	const op = errors.Op("parse_severity")
	switch strings.ToLower(name) {
	case "verbose", "trace", "debug":
		return zapcore.DebugLevel, nil
	case "information", "info":
		return zapcore.InfoLevel, nil
	case "warning", "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	default:
		return zapcore.InvalidLevel, errors.E(op, errors.Errorf("unknown severity: %s", name))
	}
}

// SeverityName renders a zap level under the Verbose/Information vocabulary.
func SeverityName(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return "Debug"
	case zapcore.InfoLevel:
		return "Information"
	case zapcore.WarnLevel:
		return "Warning"
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel:
		return "Error"
	case zapcore.FatalLevel:
		return "Fatal"
	default:
		return "Verbose"
	}
}
