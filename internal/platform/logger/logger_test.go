package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardd/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(config.ServerConfig{LogLevel: "debug", LogFormat: "json"}, &buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("screen", "home").Info("opened")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "opened", entry["msg"])
	assert.Equal(t, "home", entry["screen"])
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(config.ServerConfig{LogLevel: "loud", LogFormat: "text"}, &buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "invalid log level")
}
