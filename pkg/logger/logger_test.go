package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("appointment id=%d created", 1)
	log.Warn("slot %s is booked", "09:00")
	log.Error("payment failed: %v", "timeout")

	out := buf.String()
	assert.NotContains(t, out, "appointment id=1 created")
	assert.Contains(t, out, "[WARN] slot 09:00 is booked")
	assert.Contains(t, out, "[ERROR] payment failed: timeout")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("whatever"))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salon.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("calendar loaded for %s", "2025-06-07")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "calendar loaded for 2025-06-07")
}
