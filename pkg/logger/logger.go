package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OutputType defines the type of output for the logger
type OutputType string

const (
	// OutputConsole outputs logs to the console (stdout)
	OutputConsole OutputType = "console"
	// OutputFile outputs logs to a file with rotation
	OutputFile OutputType = "file"
)

// Config holds the logger configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Output defines where logs should be written (console, file)
	Output OutputType

	// Format defines the log format (json, console)
	Format string

	// FilePath is the path to the log file (required when Output is "file")
	FilePath string

	// FileMaxSizeMB is the maximum size of the log file in megabytes before rotation
	FileMaxSizeMB int

	// FileMaxBackups is the maximum number of old log files to retain
	FileMaxBackups int

	// Development enables development mode (colored console, stacktraces)
	Development bool

	// AddCaller adds caller information to log entries
	AddCaller bool
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:          "info",
		Output:         OutputConsole,
		Format:         "json",
		FilePath:       "./logs/adstudio.log",
		FileMaxSizeMB:  100,
		FileMaxBackups: 3,
		Development:    false,
		AddCaller:      true,
	}
}

// Logger wraps zap.Logger with additional functionality
type Logger struct {
	*zap.Logger
	sugar  *zap.SugaredLogger
	config *Config
}

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
)

// New creates a new Logger instance based on the provided configuration
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := createEncoderConfig(cfg.Development)

	var core zapcore.Core
	switch cfg.Output {
	case OutputFile:
		core, err = createFileCore(cfg, level, encoderConfig)
		if err != nil {
			return nil, err
		}
	default: // OutputConsole
		core = createConsoleCore(cfg, level, encoderConfig)
	}

	opts := []zap.Option{}
	if cfg.AddCaller {
		opts = append(opts, zap.AddCaller())
	}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	zapLogger := zap.New(core, opts...)

	return &Logger{
		Logger: zapLogger,
		sugar:  zapLogger.Sugar(),
		config: cfg,
	}, nil
}

// Init initializes the global logger with the provided configuration
func Init(cfg *Config) error {
	logger, err := New(cfg)
	if err != nil {
		return err
	}

	SetGlobal(logger)
	return nil
}

// SetGlobal sets the global logger instance
func SetGlobal(logger *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// Get returns the global logger instance
func Get() *Logger {
	globalMu.RLock()
	if globalLogger != nil {
		defer globalMu.RUnlock()
		return globalLogger
	}
	globalMu.RUnlock()

	// Initialize with default config if not set
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger == nil {
		cfg := DefaultConfig()
		logger, _ := New(cfg)
		globalLogger = logger
	}

	return globalLogger
}

// Sugar returns the sugared logger
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// WithContext returns a logger with trace information from the context
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return l
	}

	return l.WithFields(
		zap.String("trace_id", span.SpanContext().TraceID().String()),
		zap.String("span_id", span.SpanContext().SpanID().String()),
	)
}

// WithFields returns a logger with additional fields
func (l *Logger) WithFields(fields ...zap.Field) *Logger {
	newLogger := l.With(fields...)
	return &Logger{
		Logger: newLogger,
		sugar:  newLogger.Sugar(),
		config: l.config,
	}
}

// WithError returns a logger with an error field
func (l *Logger) WithError(err error) *Logger {
	return l.WithFields(zap.Error(err))
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.Logger.Sync()
}

// parseLevel converts a string level to zapcore.Level
func parseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	err := l.UnmarshalText([]byte(level))
	return l, err
}

// createEncoderConfig creates the encoder configuration
func createEncoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		config := zap.NewDevelopmentEncoderConfig()
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncodeTime = zapcore.ISO8601TimeEncoder
		return config
	}

	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.TimeKey = "timestamp"
	config.MessageKey = "message"
	config.LevelKey = "level"
	config.CallerKey = "caller"
	config.StacktraceKey = "stacktrace"
	return config
}

// createConsoleCore creates a core for console output
func createConsoleCore(cfg *Config, level zapcore.Level, encoderConfig zapcore.EncoderConfig) zapcore.Core {
	var encoder zapcore.Encoder
	if cfg.Format == "console" || cfg.Development {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	return zapcore.NewCore(
		encoder,
		zapcore.AddSync(os.Stdout),
		level,
	)
}

// createFileCore creates a core for file output with rotation
func createFileCore(cfg *Config, level zapcore.Level, encoderConfig zapcore.EncoderConfig) (zapcore.Core, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("file path is required for file output")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := &fileWriter{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.FileMaxSizeMB,
		MaxBackups: cfg.FileMaxBackups,
	}

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	return zapcore.NewCore(encoder, zapcore.AddSync(writer), level), nil
}
