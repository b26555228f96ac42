//go:build !unix && !windows

package player

import "os/exec"

// playbackCommand has no player on unsupported platforms.
func playbackCommand(file string, volume float64) *exec.Cmd {
	return nil
}
