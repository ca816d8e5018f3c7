package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelError, ParseLogLevel("ERROR"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, LogLevelDebug, ParseLogLevel(" debug "))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("TRACE"))
}

func TestNewLogger_Level(t *testing.T) {
	l := NewLogger(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, l.GetLevel())
	l.Debug("loaded %d rows", 3)
	l.Sync()

	NewNopLogger().Error("discarded %s", "message")
}
