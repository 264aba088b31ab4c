package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagConfig = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigCommandPrintsEmbeddedDefaults(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "# source: embedded")
	assert.Contains(t, out, "fps: 30")
}

func TestConfigCommandCustomPath(t *testing.T) {
	path := writeConfig(t, "display:\n  fps: 60\n")

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "# source: custom")
	assert.Contains(t, out, "fps: 60")
}

func TestConfigCommandInvalid(t *testing.T) {
	path := writeConfig(t, "display:\n  fps: 0\n")

	_, err := execute(t, "config", "--config", path)
	assert.Error(t, err)
}

func TestKeysCommand(t *testing.T) {
	out, err := execute(t, "keys")
	require.NoError(t, err)

	for _, want := range []string{"space", "hard drop", "hold", "q/ctrl+c"} {
		assert.Contains(t, out, want)
	}
}

func TestKeysCommandFollowsConfig(t *testing.T) {
	path := writeConfig(t, "keys:\n  hold: [\"x\"]\n")

	out, err := execute(t, "keys", "--config", path)
	require.NoError(t, err)

	assert.Regexp(t, `(?m)^  x\s+hold$`, out)
	assert.NotRegexp(t, `(?m)^  c\s+hold$`, out)
}

func TestPad(t *testing.T) {
	assert.Equal(t, "←  ", pad("←", 3))
	assert.Equal(t, "space", pad("space", 3))
}
