package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	wkt := filepath.Join(dir, "a.wkt")
	require.NoError(t, os.WriteFile(wkt, []byte("LINESTRING(0 0, 2 3)"), 0o644))
	csv := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(csv, []byte("lat,lon\n1,1\n"), 0o644))

	out, _, err := run(t, "info", wkt, csv)
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "LineString")
	assert.Contains(t, out, "[0 0 2 3]")
	assert.Contains(t, out, "MultiPoint")
}

func TestInfoFailure(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "geomap.log")
	_, errOut, err := run(t, "--log-file", logFile, "info", "missing.geojson", "x.gpx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 files failed")
	assert.Contains(t, errOut, "x.gpx")

	b, readErr := os.ReadFile(logFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(b), "info: load failed")
}

func TestBadFlagValue(t *testing.T) {
	_, _, err := run(t, "--zoom", "500", "info", "whatever.wkt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view.zoom must be 0.05-64, got 500")
}
