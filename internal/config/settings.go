// Package config loads the host application's own settings from sendto.yaml.
// This is distinct from the external-application registry (extern_app.json):
// the registry may be absent or broken without consequence, while a present
// but malformed settings file is reported as an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFilename is looked up beside the executable when no explicit path
// is given.
const SettingsFilename = "sendto.yaml"

// Settings holds host-side knobs for the hand-off subsystem.
type Settings struct {
	// AppID names this application's own single-instance endpoint.
	AppID string `yaml:"app_id"`
	// LogLevel is DEBUG, INFO, WARN or ERROR.
	LogLevel string `yaml:"log_level"`
	// EndpointDir overrides the socket directory. Ignored on platforms
	// whose endpoints do not live in the filesystem.
	EndpointDir string `yaml:"endpoint_dir,omitempty"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		AppID:    "superexif",
		LogLevel: "INFO",
	}
}

// Load reads settings from settingsPath, or from sendto.yaml beside the
// executable when settingsPath is empty. A missing file yields Defaults; a
// present but unparsable file is an error.
func Load(settingsPath string) (Settings, error) {
	if settingsPath == "" {
		exe, err := os.Executable()
		if err != nil {
			return Defaults(), nil
		}
		settingsPath = filepath.Join(filepath.Dir(exe), SettingsFilename)
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", settingsPath, err)
	}

	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", settingsPath, err)
	}
	if s.AppID == "" {
		s.AppID = Defaults().AppID
	}
	if s.LogLevel == "" {
		s.LogLevel = Defaults().LogLevel
	}
	return s, nil
}
