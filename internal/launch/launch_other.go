//go:build !darwin

package launch

import (
	"fmt"
	"os/exec"

	"github.com/superexif/sendto/internal/log"
)

// StartDetached spawns the target executable directly with the file list as
// arguments. The process handle is released so the child outlives the caller.
func StartDetached(appPath string, files []string) error {
	if appPath == "" {
		return fmt.Errorf("%w: empty application path", ErrLaunchFailed)
	}

	cmd := exec.Command(appPath, files...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLaunchFailed, appPath, err)
	}
	log.WithComponent("launch").Info("launched application", "app", appPath, "files", len(files))
	return cmd.Process.Release()
}
