package logger

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// Log levels, as understood by LOG_LEVEL.
const (
	DebugLevel = int(zapcore.DebugLevel)
	InfoLevel  = int(zapcore.InfoLevel)
	WarnLevel  = int(zapcore.WarnLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

// Encodings accepted by LOG_ENCODING.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// ErrInvalidConfig is returned by Configuration.Validate.
var ErrInvalidConfig = errors.New("logger: invalid configuration")

// Configuration describes the logger built by New.
type Configuration struct {
	Level      int
	TimeFormat string
	Encoding   string
}

// DefaultConfiguration logs info and above to stderr in console encoding.
func DefaultConfiguration() Configuration {
	return Configuration{
		Level:      InfoLevel,
		TimeFormat: time.RFC3339Nano,
		Encoding:   EncodingConsole,
	}
}

// Validate reports the first invalid field.
func (c Configuration) Validate() error {
	if c.Level < DebugLevel || c.Level > ErrorLevel {
		return fmt.Errorf("%w: level %d not in [%d, %d]", ErrInvalidConfig, c.Level, DebugLevel, ErrorLevel)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("%w: empty time format", ErrInvalidConfig)
	}
	if c.Encoding != EncodingConsole && c.Encoding != EncodingJSON {
		return fmt.Errorf("%w: encoding %q", ErrInvalidConfig, c.Encoding)
	}
	return nil
}
