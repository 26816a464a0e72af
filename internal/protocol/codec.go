// Package protocol implements the hot-send wire format: a single
// newline-terminated JSON object {"files": [...]} per connection.
package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Encode serializes one message and writes it as a single line to w.
// Returns an error if marshaling or writing fails.
func Encode(w io.Writer, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("refusing to encode empty file list")
	}

	encoder := json.NewEncoder(w)
	if err := encoder.Encode(Message{Files: files}); err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	return nil
}

// Decode parses one received line into an ordered file-path list.
// Any structural problem wraps ErrMalformedMessage.
func Decode(line []byte) ([]string, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedMessage)
	}

	var msg Message
	decoder := json.NewDecoder(bytes.NewReader(line))
	decoder.DisallowUnknownFields() // Strict parsing

	if err := decoder.Decode(&msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	if msg.Files == nil {
		return nil, fmt.Errorf("%w: missing required field: files", ErrMalformedMessage)
	}

	return msg.Files, nil
}
