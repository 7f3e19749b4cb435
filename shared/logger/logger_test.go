package logger_test

import (
	"bytes"
	"errors"
	"salon/config"
	"salon/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("automation unreachable"))

	assert.Contains(t, buf.String(), "automation unreachable")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     zerolog.Level
	}{
		{name: "debug", logLevel: "debug", want: zerolog.DebugLevel},
		{name: "info", logLevel: "info", want: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", want: zerolog.WarnLevel},
		{name: "error", logLevel: "error", want: zerolog.ErrorLevel},
		{name: "disabled", logLevel: "disabled", want: zerolog.Disabled},
		{name: "invalid defaults to trace", logLevel: "loud", want: zerolog.TraceLevel},
		{name: "empty defaults to trace", logLevel: "", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			var buf bytes.Buffer
			log.Logger = log.Output(&buf)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetup_JSONFields(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.Version = "2.1.0"
	cfg.App.Name = "salon"

	logger.Setup(cfg)

	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)
	log.Info().Msg("booking confirmed")

	assert.Contains(t, buf.String(), `"app":"salon"`)
	assert.Contains(t, buf.String(), `"version":"2.1.0"`)
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name           string
		env            string
		wantTimeFormat string
	}{
		{name: "development uses console output", env: "development", wantTimeFormat: zerolog.TimeFormatUnix},
		{name: "empty env uses console output", env: "", wantTimeFormat: zerolog.TimeFormatUnix},
		{name: "production uses json output", env: "production", wantTimeFormat: "2006-01-02T15:04:05Z07:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.Server.LogLevel = "info"

			logger.Setup(cfg)

			assert.Equal(t, tt.wantTimeFormat, zerolog.TimeFieldFormat)
			assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
		})
	}
}
