package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, InfoLevel)

	l.Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Info("saved item %d", 42)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "saved item 42")

	buf.Reset()
	l.Error("failed: %v", "disk full")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}
