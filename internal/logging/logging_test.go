package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupStream(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Setup(&buf, Options{Level: slog.LevelInfo})
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("syllabified", slog.String("word", "χρόνια"))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=syllabified")
	assert.Contains(t, buf.String(), "word=χρόνια")
}

func TestSetupFile(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "logs", "grac.log")
	logger, closer, err := Setup(&buf, Options{File: file})
	require.NoError(t, err)

	logger.Info("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=started")
	assert.Contains(t, buf.String(), "msg=started")
}
