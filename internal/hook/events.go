package hook

import "fmt"

// Event is one of the lifecycle moments Claude Code raises hooks for,
// identified by its canonical host-side name.
type Event string

// The closed set of hook events ccsounds reacts to. Never extended at
// runtime; the configuration document carries one flag per event.
const (
	Notification     Event = "Notification"
	Stop             Event = "Stop"
	SubagentStop     Event = "SubagentStop"
	UserPromptSubmit Event = "UserPromptSubmit"
	PreToolUse       Event = "PreToolUse"
	PostToolUse      Event = "PostToolUse"
	SessionStart     Event = "SessionStart"
)

// configKeys maps each event to its snake_case key in the local
// configuration document.
var configKeys = map[Event]string{
	Notification:     "notification",
	Stop:             "stop",
	SubagentStop:     "subagent_stop",
	UserPromptSubmit: "user_prompt_submit",
	PreToolUse:       "pre_tool_use",
	PostToolUse:      "post_tool_use",
	SessionStart:     "session_start",
}

// Events returns all known events in a stable order.
func Events() []Event {
	return []Event{
		Notification,
		Stop,
		SubagentStop,
		UserPromptSubmit,
		PreToolUse,
		PostToolUse,
		SessionStart,
	}
}

// ConfigKeys returns the configuration keys for all known events in the
// same order as Events.
func ConfigKeys() []string {
	events := Events()
	keys := make([]string, len(events))
	for i, e := range events {
		keys[i] = configKeys[e]
	}
	return keys
}

// ConfigKey returns the configuration key for this event.
func (e Event) ConfigKey() string {
	return configKeys[e]
}

// Name returns the canonical host-side name.
func (e Event) Name() string {
	return string(e)
}

// Parse validates a canonical event name.
func Parse(name string) (Event, error) {
	e := Event(name)
	if _, ok := configKeys[e]; !ok {
		return "", fmt.Errorf("unknown hook event: %s", name)
	}
	return e, nil
}

// FromConfigKey resolves a configuration key back to its event.
func FromConfigKey(key string) (Event, bool) {
	for e, k := range configKeys {
		if k == key {
			return e, true
		}
	}
	return "", false
}
