// Package registry reads and writes the external-application table backed by
// extern_app.json. The file lives beside the host binary unless the caller
// supplies a directory override.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/superexif/sendto/internal/log"
)

// ConfigFilename is the registry file name, fixed by the on-disk contract.
const ConfigFilename = "extern_app.json"

// AppEntry describes one configured external application. AppID is optional;
// entries without it are reachable by cold launch only. Callers must keep
// AppID unique across entries that set it.
type AppEntry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	AppID string `json:"app_id,omitempty"`
}

type registryFile struct {
	Apps []AppEntry `json:"apps"`
}

// ConfigPath returns the full path of extern_app.json. An empty configDir
// selects the directory containing the running executable.
func ConfigPath(configDir string) string {
	if configDir == "" {
		configDir = defaultConfigDir()
	}
	return filepath.Join(configDir, ConfigFilename)
}

func defaultConfigDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// Load reads the registry. A missing or malformed file degrades to an empty
// list; the host application must stay usable with zero configured apps.
func Load(configDir string) []AppEntry {
	logger := log.WithComponent("registry")
	path := ConfigPath(configDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("registry unreadable, using empty list", "path", path, "error", err)
		}
		return []AppEntry{}
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Warn("registry malformed, using empty list", "path", path, "error", err)
		return []AppEntry{}
	}
	if file.Apps == nil {
		return []AppEntry{}
	}
	return file.Apps
}

// Save writes the full registry, replacing any previous contents.
func Save(configDir string, apps []AppEntry) error {
	path := ConfigPath(configDir)

	if apps == nil {
		apps = []AppEntry{}
	}
	data, err := json.MarshalIndent(registryFile{Apps: apps}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	return nil
}

// FindByName returns the first entry with the given display name.
func FindByName(apps []AppEntry, name string) (AppEntry, bool) {
	for _, app := range apps {
		if app.Name == name {
			return app, true
		}
	}
	return AppEntry{}, false
}
