package protocol

import "errors"

// Message is the hot-send envelope: one JSON object per line, UTF-8, carrying
// an ordered list of absolute file paths.
type Message struct {
	Files []string `json:"files"`
}

// ErrMalformedMessage marks a payload the receiver could not decode. The
// server logs it and drops the connection; it never stops listening over it.
var ErrMalformedMessage = errors.New("malformed hand-off message")
