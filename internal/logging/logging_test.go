package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("liveness.ok", "url", "http://127.0.0.1:8000/")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "liveness.ok", line["msg"])
	assert.Equal(t, "INFO", line["level"])
}

func TestNewDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	assert.Zero(t, buf.Len())

	New(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "crudpanel.log")
	log, closeFn, err := Open(path, false)
	require.NoError(t, err)
	log.Info("request.sent")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "request.sent")
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	log, closeFn, err := Open("", true)
	require.NoError(t, err)
	log.Info("nowhere")
	assert.NoError(t, closeFn())
}
