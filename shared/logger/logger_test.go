package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"hotel/config"
	"hotel/shared/constant"
	"hotel/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preserveLogger(t *testing.T) {
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
	preserveLogger(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	preserveLogger(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("cleaning c-1 of room r-1 not visible after insert"))

	assert.Contains(t, buf.String(), "cleaning c-1 of room r-1 not visible after insert")
	assert.Contains(t, buf.String(), "logger_test.TestErrorWithStack")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		want     zerolog.Level
	}{
		{logLevel: "trace", want: zerolog.TraceLevel},
		{logLevel: "debug", want: zerolog.DebugLevel},
		{logLevel: "info", want: zerolog.InfoLevel},
		{logLevel: "warn", want: zerolog.WarnLevel},
		{logLevel: "error", want: zerolog.ErrorLevel},
		{logLevel: "verbose", want: zerolog.TraceLevel},
		{logLevel: "", want: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			preserveLogger(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetOutput(t *testing.T) {
	preserveLogger(t)

	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.App.Name = "hotel"

	logger.SetOutput(cfg, &buf)
	log.Error().Str("room_id", "r-1").Msg("failed to sync last cleaned")

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "production logs are JSON lines")
	assert.Equal(t, "hotel", entry["app"])
	assert.Equal(t, "r-1", entry["room_id"])
	assert.Equal(t, "error", entry["level"])

	buf.Reset()
	cfg.Server.Env = constant.ServerEnvDevelopment

	logger.SetOutput(cfg, &buf)
	log.Error().Msg("console line")

	assert.False(t, json.Valid(buf.Bytes()), "development logs go through the console writer")
	assert.Contains(t, buf.String(), "console line")
}
