// Package notify shows best-effort desktop notifications for hook
// events. Like playback, failure here is indistinguishable from
// "nothing to do".
package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog/log"
)

// Title is the notification title shown for every message.
const Title = "Claude Code"

// Show displays a desktop notification. Errors are swallowed.
func Show(message string) {
	if message == "" {
		return
	}
	if err := beeep.Notify(Title, message, ""); err != nil {
		log.Debug().Err(err).Msg("Desktop notification failed")
	}
}
