package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RED1EYE/portfolio/internal/config"
)

func restore(t *testing.T) {
	prev, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(level)
	})
}

func TestSetupJSON(t *testing.T) {
	restore(t)
	var buf bytes.Buffer
	closer, err := setup(config.LogConfig{Level: "info", Format: config.FormatJSON}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Info().Str("section", "about").Msg("revealed")
	log.Debug().Msg("hidden by level")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "revealed", entry["message"])
	assert.Equal(t, "about", entry["section"])
	assert.Contains(t, entry, "time")
}

func TestSetupConsole(t *testing.T) {
	restore(t)
	var buf bytes.Buffer
	closer, err := setup(config.LogConfig{Level: "debug", Format: config.FormatConsole}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Debug().Msg("drawer toggled")
	assert.Contains(t, buf.String(), "drawer toggled")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestSetupFile(t *testing.T) {
	restore(t)
	path := filepath.Join(t.TempDir(), "logs", "site.log")
	var buf bytes.Buffer
	closer, err := setup(config.LogConfig{Level: "info", Format: config.FormatConsole, File: path, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)

	log.Info().Msg("written twice")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(bytes.TrimSpace(data)))
	assert.Contains(t, string(data), "written twice")
	assert.Contains(t, buf.String(), "written twice")
}

func TestSetupBadLevel(t *testing.T) {
	restore(t)
	_, err := setup(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
