//go:build darwin

package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/superexif/sendto/internal/log"
)

// StartDetached opens the target application with the file list via the
// platform's canonical bundle invocation: open -a <app> <files...>. The
// child's lifetime is not tied to the caller.
func StartDetached(appPath string, files []string) error {
	if appPath == "" {
		return fmt.Errorf("%w: empty application path", ErrLaunchFailed)
	}

	resolved := ResolveAppPath(appPath)
	args := append([]string{"-a", resolved}, files...)

	cmd := exec.Command("open", args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: open -a %s: %v", ErrLaunchFailed, resolved, err)
	}
	log.WithComponent("launch").Info("launched application", "app", resolved, "files", len(files))
	return cmd.Process.Release()
}

// ResolveAppPath normalizes a configured application path into a form
// `open -a` accepts. Handles bare bundle paths, paths missing the .app
// suffix, and vendor-style folders wrapping the real bundle.
func ResolveAppPath(appPath string) string {
	if appPath == "" {
		return ""
	}
	if strings.HasSuffix(appPath, ".app") {
		return appPath
	}
	if isDir(appPath + ".app") {
		return appPath + ".app"
	}
	if isDir(appPath) {
		inner := filepath.Join(appPath, filepath.Base(appPath)+".app")
		if isDir(inner) {
			return inner
		}
		if entries, err := os.ReadDir(appPath); err == nil {
			for _, e := range entries {
				if strings.HasSuffix(e.Name(), ".app") {
					return filepath.Join(appPath, e.Name())
				}
			}
		}
	}
	// Fall back to the bare application name and let open resolve it.
	base := filepath.Base(appPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
