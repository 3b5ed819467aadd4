package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "error message")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
	buf.Reset()
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())
	buf.Reset()

	SetDebug(true)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")
	buf.Reset()

	// Reset debug for other tests
	SetDebug(false)
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	// Chained With calls accumulate fields.
	l.With(F("key1", "value1")).With(F("key2", 123)).Info("chained fields")
	output = buf.String()
	assert.Contains(t, output, "chained fields")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	// Fields never leak back into the parent logger.
	l.Info("plain message")
	assert.NotContains(t, buf.String(), "key1=value1")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.Info("json message")

	var entry map[string]interface{}
	err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry)
	require.NoError(t, err)

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "json message", entry["message"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "caller")
	buf.Reset()

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured json")
	err = json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry)
	require.NoError(t, err)

	assert.Equal(t, "value1", entry["key1"])
	assert.Equal(t, float64(123), entry["key2"]) // JSON numbers are float64
}

func TestPackageLevelLogger(t *testing.T) {
	var buf bytes.Buffer

	originalLogger := logger
	Configure(WithOutput(&buf))
	defer func() { logger = originalLogger }()

	Info("package message")
	assert.Contains(t, buf.String(), "package message")
	buf.Reset()

	With(F("secret", 50)).Debug("hidden without debug")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	With(F("secret", 50)).Debug("shown with debug")
	assert.Contains(t, buf.String(), "secret=50")
}
