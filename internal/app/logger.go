package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/config"
)

var globalLogger zerolog.Logger

func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	globalLogger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Info().Msg("initialized default logger")
}

func MustInitApplicationLogger() {
	cfg := config.Global()

	w, level, err := loggerOutput(cfg.Env)
	if err != nil {
		globalLogger.Error().
			Str("env", cfg.Env).
			Msg("unknown env")
		panic(err)
	}

	zerolog.SetGlobalLevel(level)
	globalLogger = globalLogger.Output(w)
	globalLogger.Info().
		Str("level", level.String()).
		Msg("initialized application logger")
}

// loggerOutput picks a JSON writer for deployed envs and a console writer
// for local runs.
func loggerOutput(env string) (io.Writer, zerolog.Level, error) {
	switch env {
	case config.EnvDev:
		return os.Stdout, zerolog.DebugLevel, nil
	case config.EnvProd:
		return os.Stdout, zerolog.InfoLevel, nil
	case config.EnvLocal:
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = os.Stdout
		return consoleWriter, zerolog.TraceLevel, nil
	default:
		return nil, zerolog.NoLevel, fmt.Errorf("unknown env: %s", env)
	}
}

// componentLogger tags every event with the component that emitted it.
func componentLogger(component string) zerolog.Logger {
	return globalLogger.With().
		Str("component", component).
		Logger()
}
