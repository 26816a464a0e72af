package instance

import (
	"time"

	"github.com/superexif/sendto/internal/endpoint"
	"github.com/superexif/sendto/internal/log"
	"github.com/superexif/sendto/internal/paths"
	"github.com/superexif/sendto/internal/protocol"
)

const (
	connectTimeout = 3 * time.Second
	writeTimeout   = 2 * time.Second
)

// SendToRunning attempts to hand the file list to an already-running
// instance owning appID's endpoint. It never retries and never blocks past
// its deadlines; false means "no reachable instance", which callers treat as
// the cue to fall back, not as an error to surface.
func SendToRunning(appID, endpointDir string, files []string) bool {
	logger := log.WithComponent("instance").With("app_id", appID)

	files = paths.Normalize(files)
	if appID == "" || len(files) == 0 {
		return false
	}

	conn, err := endpoint.Dial(appID, endpointDir, connectTimeout)
	if err != nil {
		logger.Debug("no running instance reachable", "error", err)
		return false
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := protocol.Encode(conn, files); err != nil {
		logger.Debug("hot send failed", "error", err)
		return false
	}

	logger.Debug("hot send delivered", "count", len(files))
	return true
}
