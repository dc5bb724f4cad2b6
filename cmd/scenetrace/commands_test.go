// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
name: root
type: separator
children:
  - {name: move, type: transform, translate: [10, 0, 0]}
  - name: sw
    type: switch
    children:
      - {name: box, type: cube}
  - {name: small, type: cube, size: [1, 1, 1]}
`

func writeScene(t *testing.T) string {
	fname := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(testScene), 0666))
	return fname
}

// run runs the command line with the flags reset, and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Setenv("CLICOLOR_FORCE", "0")
	traceAll, tracePath, traceWatch, searchAll = false, "", false, false
	settingsFile, verbose, veryVerbose, quiet = "", false, false, false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	assert.Equal(t, "scenetrace", rootCmd.Use)
	assert.True(t, rootCmd.HasSubCommands())
	for _, c := range []string{"trace", "bbox", "search"} {
		cmd, _, err := rootCmd.Find([]string{c})
		require.NoError(t, err)
		assert.NotNil(t, cmd.RunE, c)
	}
}

func TestTrace(t *testing.T) {
	fname := writeScene(t)
	out, err := run(t, "trace", fname)
	require.NoError(t, err)
	assert.Equal(t, "root\n  move\n  sw\n  small\n", out)

	out, err = run(t, "trace", "--all", fname)
	require.NoError(t, err)
	assert.Equal(t, "root\n  move\n  sw\n    box\n  small\n", out)

	out, err = run(t, "trace", "--path", "small", fname)
	require.NoError(t, err)
	assert.Equal(t, "root\n  move\n  small\n", out)

	_, err = run(t, "trace", "--path", "nothing", fname)
	assert.ErrorContains(t, err, `no node named "nothing"`)
	_, err = run(t, "trace", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBBox(t *testing.T) {
	out, err := run(t, "bbox", writeScene(t))
	require.NoError(t, err)
	assert.Contains(t, out, "min: (9.5, -0.5, -0.5)")
	assert.Contains(t, out, "max: (10.5, 0.5, 0.5)")
}

func TestSearch(t *testing.T) {
	fname := writeScene(t)
	out, err := run(t, "search", fname, "cube")
	require.NoError(t, err)
	assert.Equal(t, "root/small\n", out)

	out, err = run(t, "search", "--all", fname, "cube")
	require.NoError(t, err)
	assert.Equal(t, "root/sw/box\nroot/small\n", out)

	out, err = run(t, "search", fname, "move")
	require.NoError(t, err)
	assert.Equal(t, "root/move\n", out)
}

func TestSettings(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fname, []byte(`log_level = "shout"`), 0666))
	_, err := run(t, "--settings", fname, "bbox", writeScene(t))
	assert.ErrorContains(t, err, "invalid log level")
}
