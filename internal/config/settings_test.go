package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), SettingsFilename))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadReadsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFilename)
	body := "app_id: birdstamp\nlog_level: DEBUG\nendpoint_dir: /run/birdstamp\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "birdstamp", s.AppID)
	assert.Equal(t, "DEBUG", s.LogLevel)
	assert.Equal(t, "/run/birdstamp", s.EndpointDir)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFilename)
	require.NoError(t, os.WriteFile(path, []byte("log_level: WARN\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "superexif", s.AppID)
	assert.Equal(t, "WARN", s.LogLevel)
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFilename)
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err, "the host's own settings file must not fail silently")
}
