package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "LEARNQUEST_LOG_LEVEL"

// LogFileEnvVar names the file log entries are appended to.
// The interactive UI owns stdout, so logs never go there.
const LogFileEnvVar = "LEARNQUEST_LOG_FILE"

// Options selects the level and destination of the global logger.
type Options struct {
	Level string // debug, info, warn, error; empty means silent
	File  string // output path; empty means stderr
}

// Initialize creates a new logger from opts.
// Empty fields fall back to LEARNQUEST_LOG_LEVEL and LEARNQUEST_LOG_FILE.
// If no level is configured anywhere, logging is disabled (silent mode).
func Initialize(opts Options) error {
	if opts.Level == "" {
		opts.Level = os.Getenv(LogLevelEnvVar)
	}
	if opts.File == "" {
		opts.File = os.Getenv(LogFileEnvVar)
	}

	if opts.Level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if opts.File != "" {
		output = opts.File
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(opts.Level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if opts.File == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// Plain levels in files; escape codes make them unreadable in a pager
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSectionChange logs a tab switch
func LogSectionChange(from, to string) {
	Debug("Section changed",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogCrystalSelected logs a crystal being opened in the detail view
func LogCrystalSelected(id int, name, chakra string, frequency float64) {
	Info("Crystal selected",
		zap.Int("crystal_id", id),
		zap.String("name", name),
		zap.String("chakra", chakra),
		zap.Float64("frequency_hz", frequency),
	)
}

// LogLockedSelection logs an ignored selection of a locked crystal
func LogLockedSelection(id int, levelRequirement int) {
	Debug("Locked crystal ignored",
		zap.Int("crystal_id", id),
		zap.Int("level_requirement", levelRequirement),
	)
}

// LogCelebration logs the celebration flag changing
func LogCelebration(event string, token uint64) {
	Debug("Celebration",
		zap.String("event", event),
		zap.Uint64("token", token),
	)
}

// LogToneSkipped logs a tone request that could not be played
func LogToneSkipped(frequency float64, reason string) {
	Debug("Tone skipped",
		zap.Float64("frequency_hz", frequency),
		zap.String("reason", reason),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
