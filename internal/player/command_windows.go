//go:build windows

package player

import (
	"fmt"
	"os/exec"
)

// playbackCommand builds a PowerShell SoundPlayer invocation. The player
// offers no volume control; the stored fraction only gates playback.
func playbackCommand(file string, volume float64) *exec.Cmd {
	script := fmt.Sprintf(`(New-Object Media.SoundPlayer '%s').PlaySync()`, file)
	return exec.Command("powershell", "-NoProfile", "-Command", script)
}
