package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	globalLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	once         sync.Once
)

// InitLogging configures the global zerolog logger. Output always goes to
// stdout and, when logFilePath is set, is duplicated into that file.
func InitLogging(level, logFilePath string) {
	once.Do(func() {
		writers := []io.Writer{os.Stdout}

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
			if err != nil {
				os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}

		multi := zerolog.MultiLevelWriter(writers...)
		globalLogger = zerolog.New(multi).With().Timestamp().Logger().Level(lvl)
		log.Logger = globalLogger
	})
}

// Get returns the global logger.
func Get() *zerolog.Logger {
	return &globalLogger
}

// WithLogger returns a new context carrying a logger with additional fields.
func WithLogger(ctx context.Context, fields map[string]interface{}) context.Context {
	l := getLogger(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

func getLogger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

func DebugLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Debug().Msgf(msg, args...)
}

func InfoLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Info().Msgf(msg, args...)
}

func WarnLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Warn().Msgf(msg, args...)
}

func ErrorLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Error().Msgf(msg, args...)
}
