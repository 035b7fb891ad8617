package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig controls the rotating log file
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

// DefaultFileConfig writes to $XDG_STATE_HOME/respath/respath.log, rotating
// at 50MB and keeping three backups for a week
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Enabled:    true,
		Path:       filepath.Join(xdg.StateHome, "respath", "respath.log"),
		MaxSizeMB:  50,
		MaxAgeDays: 7,
		MaxBackups: 3,
	}
}

// LevelFor maps a -v count to a log level
func LevelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger with the default log file
func SetupLogger(verbosity int) io.Closer {
	return Setup(verbosity, DefaultFileConfig())
}

// Setup configures the global logger: human readable output on stderr plus,
// when enabled, JSON lines in a rotating file. The returned Closer releases
// the file.
func Setup(verbosity int, file FileConfig) io.Closer {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}

	writers := []io.Writer{consoleWriter}
	var closer io.Closer = nopCloser{}
	var fileErr error

	if file.Enabled && file.Path != "" {
		if fileErr = os.MkdirAll(filepath.Dir(file.Path), 0755); fileErr == nil {
			rotator := &lumberjack.Logger{
				Filename:   file.Path,
				MaxSize:    file.MaxSizeMB,
				MaxAge:     file.MaxAgeDays,
				MaxBackups: file.MaxBackups,
			}
			writers = append(writers, rotator)
			closer = rotator
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", file.Path).Msg("Failed to create log directory, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().
		Int("verbosity", verbosity).
		Bool("fileEnabled", file.Enabled).
		Str("logFile", file.Path).
		Msg("Logger initialized")

	return closer
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
