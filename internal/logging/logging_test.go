package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotraits/internal/config"
)

func TestNewDiscards(t *testing.T) {
	logger, closeFn, err := New(config.LogConfig{Level: "warn", Format: "text"})
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.Equal(t, io.Discard, logger.Out)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geomap.log")
	logger, closeFn, err := New(config.LogConfig{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	logger.WithFields(logrus.Fields{"path": "a.wkt"}).Info("loaded")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"path":"a.wkt"`)
	assert.Contains(t, string(b), `"msg":"loaded"`)
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "chatty"})
	assert.Error(t, err)
}
