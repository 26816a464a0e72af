// Package send implements the composite "open in external app" operation:
// hot-send to a running instance when the target declares an app_id, cold
// launch as the universal fallback. Hot IPC is an optimization that spares a
// heavyweight application a relaunch; the cold launch always works.
package send

import (
	"fmt"

	"github.com/superexif/sendto/internal/instance"
	"github.com/superexif/sendto/internal/launch"
	"github.com/superexif/sendto/internal/log"
	"github.com/superexif/sendto/internal/paths"
	"github.com/superexif/sendto/internal/registry"
)

// Seams for tests; retry and fallback policy lives here, one layer above the
// client, which never retries on its own.
var (
	hotSend       = instance.SendToRunning
	startDetached = launch.StartDetached
)

// FilesToApp opens the file list with the given external application.
// Relative paths are resolved against baseDir. Every failure below this
// operation is recovered by falling back; only the terminal failure — no
// hot-send possible and the cold launch also failed — is returned.
func FilesToApp(files []string, app registry.AppEntry, baseDir string) error {
	logger := log.WithComponent("send").With("app", app.Name)

	if app.Path == "" {
		logger.Warn("ignoring send to app without a path")
		return nil
	}

	resolved := make([]string, 0, len(files))
	for _, f := range files {
		if f == "" {
			continue
		}
		resolved = append(resolved, paths.Absolutize(f, baseDir))
	}
	if len(resolved) == 0 {
		logger.Debug("ignoring send with no files")
		return nil
	}

	if app.AppID != "" {
		if hotSend(app.AppID, "", resolved) {
			logger.Info("handed off to running instance", "app_id", app.AppID, "files", len(resolved))
			return nil
		}
		logger.Debug("no running instance, falling back to launch", "app_id", app.AppID)
	}

	if err := startDetached(app.Path, resolved); err != nil {
		return fmt.Errorf("send %d file(s) to %q: %w", len(resolved), app.Name, err)
	}
	return nil
}
