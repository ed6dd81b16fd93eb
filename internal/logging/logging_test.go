package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRustLogDefaultOnly(t *testing.T) {
	f, err := ParseRustLog("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, f.Default)
}

func TestParseRustLogWithOverrides(t *testing.T) {
	f, err := ParseRustLog("warn,jsonls/schema=debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, f.Default)
	assert.Equal(t, slog.LevelDebug, f.LevelFor("jsonls/schema"))
	assert.Equal(t, slog.LevelWarn, f.LevelFor("jsonls/server"))
}

func TestParseRustLogEmpty(t *testing.T) {
	f, err := ParseRustLog("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, f.Default)
}

func TestParseRustLogInvalidLevel(t *testing.T) {
	_, err := ParseRustLog("bogus")
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}
