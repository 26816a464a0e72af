// Package launch starts an external application detached from the caller,
// passing each file path as a separate argument. This is the universal cold
// fallback behind the hot hand-off path.
package launch

import "errors"

// ErrLaunchFailed marks a spawn that could not start at all. Unlike hot-send
// misses this one is user-visible: when it fires, both tiers of the hand-off
// policy have been exhausted.
var ErrLaunchFailed = errors.New("failed to launch application")
