// Package endpoint owns the per-app_id local rendezvous point used for
// single-instance detection and hot hand-off. The transport is a unix domain
// socket on most platforms and a named pipe on Windows; callers only see
// Listen/Dial plus the derived endpoint name.
package endpoint

import (
	"encoding/hex"
	"errors"
	"os"
	"strconv"

	"github.com/zeebo/blake3"
)

// ErrInUse is returned by Listen when a live process already holds the
// endpoint. This is the normal second-instance signal, not a fault.
var ErrInUse = errors.New("endpoint already in use")

const namePrefix = "sendto-"

// Name derives the endpoint name for an app_id. The name is scoped to the
// current user and hashed so arbitrary app_id strings can never produce an
// unsafe socket or pipe path.
func Name(appID string) string {
	sum := blake3.Sum256([]byte(appID + "\x00" + userToken()))
	return namePrefix + hex.EncodeToString(sum[:])[:16]
}

func userToken() string {
	if uid := os.Getuid(); uid >= 0 {
		return strconv.Itoa(uid)
	}
	// Windows has no numeric uid.
	if u := os.Getenv("USERNAME"); u != "" {
		return u
	}
	return "default"
}
