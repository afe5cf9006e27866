package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with a config file in a temp dir.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PORT", "")
	dir := t.TempDir()
	t.Cleanup(func() { buildOut, serveAddr = "", "" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dir, "portfolio.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio dev\n", out)
}

func TestContentDumpAndCheck(t *testing.T) {
	out, err := run(t, "content", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "Faizan Ali Sayed | Portfolio")

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))
	out, err = run(t, "content", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "content ok")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("hero:\n  name: \"\"\n"), 0o644))
	_, err = run(t, "content", "check", bad)
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	stdout, err := run(t, "build", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote")
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, "static", "app.js"))
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	t.Setenv("PORT", "")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "init-config"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ":8080")
}
