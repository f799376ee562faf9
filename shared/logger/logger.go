package logger

import (
	"hostly/config"
	"hostly/shared/constant"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

// InitLogger installs a console logger at trace level so startup is visible before config loads.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// Configure applies LOG_LEVEL. Outside development the console writer is replaced with JSON lines.
func Configure(cfg *config.Config) {
	if cfg.Server.Env != constant.ServerEnvDevelopment {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.App.Name).Logger()
	}

	level := defaultLevel

	if raw := cfg.Server.LogLevel; raw != "" {
		parsed, err := zerolog.ParseLevel(raw)
		if err != nil {
			log.Warn().Str("loglevel", raw).Msg("Unknown log level, using info")
		} else {
			level = parsed
		}
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("loglevel", level.String()).Msg("Log level set")
}

// ErrorWithStack logs err with its stack trace.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Component returns the global logger tagged with a component field.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
