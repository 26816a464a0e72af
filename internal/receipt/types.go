package receipt

import "time"

// Source identifies which producer originated a receipt.
type Source string

const (
	SourceColdStart    Source = "cold_start"
	SourcePlatformOpen Source = "platform_open"
	SourceSocket       Source = "socket"
)

// Event is one logical hand-off: an ordered file list plus its origin.
// Transient, never persisted; exactly one Event reaches the navigator per
// logical receipt.
type Event struct {
	ID     string    `json:"event_id"`
	Files  []string  `json:"files"`
	Source Source    `json:"source"`
	At     time.Time `json:"at"`
}
