package logger

import (
	"os"
	"salon/config"
	"salon/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger writes human readable lines to stdout for local runs.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Console logger ready")
}

// initJSONLogger tags every line with the service name and version.
func initJSONLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.Server.Version).
		Logger()
	log.Trace().Msg("JSON logger ready")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL, falling back to trace when it is unset or unknown.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == constant.Empty {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("No usable log level configured, using default")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Log level configured")
	}

	zerolog.SetGlobalLevel(level)
}

// Setup picks the output format by environment and applies the configured level.
func Setup(cfg *config.Config) {
	if cfg.Server.Env == constant.Empty || cfg.Server.Env == constant.ServerEnvDevelopment {
		InitLogger()
	} else {
		initJSONLogger(cfg)
	}

	SetLogLevel(cfg)
}
