//go:build !windows

package endpoint

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/superexif/sendto/internal/log"
)

// probeTimeout bounds the liveness check against a possibly stale socket.
const probeTimeout = 300 * time.Millisecond

// DefaultDir returns the directory holding hand-off sockets.
func DefaultDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	return os.TempDir()
}

func socketPath(appID, dir string) string {
	if dir == "" {
		dir = DefaultDir()
	}
	return filepath.Join(dir, Name(appID)+".sock")
}

// Listen claims the endpoint for appID. A bind conflict is probed with a
// short dial: a reachable listener means a genuinely live holder (ErrInUse);
// an unreachable one is a stale socket left by a crashed process, which is
// removed before binding again.
func Listen(appID, dir string) (net.Listener, error) {
	path := socketPath(appID, dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create endpoint directory: %w", err)
	}

	l, err := net.Listen("unix", path)
	if err == nil {
		return l, nil
	}

	if conn, derr := net.DialTimeout("unix", path, probeTimeout); derr == nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: live listener at %s", ErrInUse, path)
	}

	log.WithComponent("endpoint").Warn("removing stale socket", "path", path, "bind_error", err)
	if rmErr := os.Remove(path); rmErr != nil {
		return nil, fmt.Errorf("remove stale socket %s: %w", path, rmErr)
	}

	l, err = net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("bind endpoint %s: %w", path, err)
	}
	return l, nil
}

// Dial connects to the endpoint for appID within timeout.
func Dial(appID, dir string, timeout time.Duration) (net.Conn, error) {
	conn, err := net.DialTimeout("unix", socketPath(appID, dir), timeout)
	if err != nil {
		return nil, fmt.Errorf("dial endpoint: %w", err)
	}
	return conn, nil
}
