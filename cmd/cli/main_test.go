package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/rpncalc/internal/testutil"
)

func TestRun_OneShotSuccess(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// x is the default multiplication alias, so no shell quoting is needed.
	err := run(strings.NewReader(""), out, errOut, []string{"-plugins", t.TempDir(), "3", "4", "+", "2", "x"})
	require.NoError(t, err)
	assert.Equal(t, "14\n", out.String())
}

func TestRun_OneShotProcessingError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-plugins", t.TempDir(), "5", "0", "/"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
	assert.Empty(t, out.String(), "stdout must stay clean on processing errors")
}

func TestRun_InteractiveSession(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	script := "3 4 +\nq\n"
	err := run(strings.NewReader(script), out, &bytes.Buffer{}, []string{"-plugins", t.TempDir()})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "1: 7")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	errOut := &bytes.Buffer{}
	err := run(strings.NewReader(""), &bytes.Buffer{}, errOut, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	assert.Contains(t, errOut.String(), "Usage:", "expected help text on the error stream")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// A defective autoload plugin panics inside app.NewApp; run must
	// recover and hand back a clean error.
	root := testutil.WriteFiles(t, map[string]string{
		"plugins/bad.hcl": `group "bad" {`,
		"rc.toml":         `autoload = ["bad"]`,
	})

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{},
		[]string{"-plugins", filepath.Join(root, "plugins"), "-rc", filepath.Join(root, "rc.toml"), "1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "critical startup error")
	assert.Contains(t, err.Error(), "bad")
}
