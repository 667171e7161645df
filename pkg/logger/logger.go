package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

func InitLogger() *zerolog.Logger {
	return InitLoggerWithWriter(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
}

// InitLoggerWithWriter installs a logger writing to w as the default context logger.
func InitLoggerWithWriter(w io.Writer) *zerolog.Logger {
	logger := zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.DefaultContextLogger = &logger
	return &logger
}

// SetLevel applies a level name such as "info" or "warn". Unknown names keep the current level.
func SetLevel(level string) {
	if level == "" {
		return
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		Logger(context.Background()).Warn().Err(err).Msgf("unknown log level %q, keeping %s", level, zerolog.GlobalLevel())
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
