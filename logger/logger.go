// Package logger builds the zap logger of the command line tools from the
// LOG_LEVEL, LOG_TIME_FORMAT and LOG_ENCODING settings held by viper.
package logger

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New registers the logger defaults with viper and builds a logger from the
// resulting settings.
func New() (*zap.Logger, error) {
	def := DefaultConfiguration()
	viper.SetDefault("LOG_LEVEL", def.Level)
	viper.SetDefault("LOG_TIME_FORMAT", def.TimeFormat)
	viper.SetDefault("LOG_ENCODING", def.Encoding)

	return Build(Configuration{
		Level:      viper.GetInt("LOG_LEVEL"),
		TimeFormat: viper.GetString("LOG_TIME_FORMAT"),
		Encoding:   viper.GetString("LOG_ENCODING"),
	})
}

// Build validates cfg and returns a logger writing to stderr.
func Build(cfg Configuration) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	if cfg.Encoding == EncodingConsole {
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.Level(cfg.Level)),
		Encoding:         cfg.Encoding,
		EncoderConfig:    enc,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zcfg.Build()
}
