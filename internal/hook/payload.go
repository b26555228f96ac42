// Package hook describes the lifecycle events Claude Code raises and the
// JSON payloads it delivers to hook commands on stdin.
// See https://docs.anthropic.com/en/docs/claude-code/hooks
package hook

import (
	"encoding/json"
	"io"
	"os"
)

// Payload is the common hook event data Claude Code writes to stdin.
type Payload struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	CWD            string `json:"cwd,omitempty"`
	HookEventName  string `json:"hook_event_name"`
}

// NotificationPayload is the Notification event payload.
type NotificationPayload struct {
	Payload
	Message string `json:"message"`
}

// ParsePayload reads and parses a generic hook payload.
func ParsePayload(r io.Reader) (*Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseNotificationPayload reads and parses a Notification payload.
func ParseNotificationPayload(r io.Reader) (*NotificationPayload, error) {
	var p NotificationPayload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReadPayload reads a hook payload from stdin.
func ReadPayload() (*Payload, error) {
	return ParsePayload(os.Stdin)
}

// ReadNotificationPayload reads a Notification payload from stdin.
func ReadNotificationPayload() (*NotificationPayload, error) {
	return ParseNotificationPayload(os.Stdin)
}
