package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/displaylist"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(clippedScene), 0o600))

	out, _, err := runCLI(t, "", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ops: 5 (5 nested)\n")
	assert.Contains(t, out, "bounds: [10 10 50 50]\n")
	assert.Contains(t, out, "unbounded: false\n")
	assert.Contains(t, out, "group opacity: true\n")
	assert.Contains(t, out, "rtree: 1 rects\n")
	assert.True(t, strings.HasSuffix(out, "ClipRect=1 DrawRect=1 Restore=1 Save=1 SetColor=1\n"), out)
}

func TestRunCulled(t *testing.T) {
	out, _, err := runCLI(t, clippedScene, "-cull", "200,200,300,300", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "ClipRect=1 Restore=1 Save=1 SetColor=1\n"), out)
}

func TestRunTrace(t *testing.T) {
	out, logs, err := runCLI(t, clippedScene, "-dispatcher", "trace", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "ops: 5")
	assert.Contains(t, logs, "DrawRect")
	assert.Contains(t, logs, "level=DEBUG")
}

func TestRunErrors(t *testing.T) {
	_, _, err := runCLI(t, "")
	assert.Error(t, err, "missing script")

	_, _, err = runCLI(t, clippedScene, "-dispatcher", "nope", "-")
	assert.ErrorIs(t, err, displaylist.ErrUnknownDispatcher)

	_, _, err = runCLI(t, clippedScene, "-cull", "1,2,3", "-")
	assert.ErrorIs(t, err, errBadArg)

	_, _, err = runCLI(t, clippedScene, "-cull", "a,b,c,d", "-")
	assert.Error(t, err)

	_, _, err = runCLI(t, "", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, _, err = runCLI(t, "", "-unknown-flag")
	assert.Error(t, err)
}

func TestParseRect(t *testing.T) {
	r, err := parseRect("1, 2,3 ,4")
	require.NoError(t, err)
	assert.Equal(t, float32(1), r.Left)
	assert.Equal(t, float32(4), r.Bottom)
}
