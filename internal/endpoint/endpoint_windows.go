//go:build windows

package endpoint

import (
	"fmt"
	"net"
	"time"

	"github.com/Microsoft/go-winio"
)

// DefaultDir is unused on Windows; named pipes live in the pipe namespace,
// not the filesystem. It exists so callers can stay platform-agnostic.
func DefaultDir() string { return "" }

func pipePath(appID string) string {
	return `\\.\pipe\` + Name(appID)
}

// Listen claims the endpoint for appID. The kernel tears pipes down with
// their owning process, so a creation conflict always means a live holder;
// there is no stale artifact to recover.
func Listen(appID, dir string) (net.Listener, error) {
	path := pipePath(appID)
	l, err := winio.ListenPipe(path, nil)
	if err != nil {
		if conn, derr := winio.DialPipe(path, nil); derr == nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%w: live listener at %s", ErrInUse, path)
		}
		return nil, fmt.Errorf("bind endpoint %s: %w", path, err)
	}
	return l, nil
}

// Dial connects to the endpoint for appID within timeout.
func Dial(appID, dir string, timeout time.Duration) (net.Conn, error) {
	conn, err := winio.DialPipe(pipePath(appID), &timeout)
	if err != nil {
		return nil, fmt.Errorf("dial endpoint: %w", err)
	}
	return conn, nil
}
