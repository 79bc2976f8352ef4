package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/NeuralTrust/InstallGate/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, logrus.DebugLevel, NewLogger(config.LogConfig{Level: "debug"}).GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger(config.LogConfig{Level: "nonsense"}).GetLevel())

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, logrus.WarnLevel, NewLogger(config.LogConfig{Level: "debug"}).GetLevel())
}

func TestConsoleHook_WritesFormattedEntry(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(config.LogConfig{Level: "info"})
	l.SetOutput(&bytes.Buffer{})
	l.AddHook(NewConsoleHook(&buf))

	l.WithField("code", "SamplePayment").Info("plugin enabled")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "plugin enabled", line["msg"])
	assert.Equal(t, "SamplePayment", line["code"])
	assert.Contains(t, line, "time")
}
