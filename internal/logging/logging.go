// Package logging builds the structured logger shared by every command.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/example/crudgen/internal/config"
)

// Options controls logger construction.
type Options struct {
	Config  config.LogConfig
	Verbose bool      // Echo the configured level on the console instead of warnings only
	Console io.Writer // Defaults to os.Stderr
}

// New builds a zap logger with a console core and, when a log file is
// configured, a rotating JSON file core.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Config.Level, err)
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleLevel := zapcore.WarnLevel
	if opts.Verbose {
		consoleLevel = level
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(zapcore.AddSync(console)),
			consoleLevel,
		),
	}

	if opts.Config.File != "" {
		cores = append(cores, fileCore(opts.Config, level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

// fileCore writes JSON lines to a lumberjack rotated file.
func fileCore(cfg config.LogConfig, level zapcore.Level) zapcore.Core {
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // Megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // Days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level)
}
