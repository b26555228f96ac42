//go:build darwin

package player

import (
	"fmt"
	"os/exec"
)

// playbackCommand builds the afplay invocation. afplay takes the volume
// as a 0.0-1.0 linear value, matching the stored fraction directly.
func playbackCommand(file string, volume float64) *exec.Cmd {
	return exec.Command("afplay", "-v", fmt.Sprintf("%.2f", volume), file)
}
