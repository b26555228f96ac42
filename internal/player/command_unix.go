//go:build unix && !darwin

package player

import "os/exec"

// playbackCommand probes the candidate players in order and builds the
// invocation for the first one available. Volume handling differs per
// player: paplay takes a 0-65536 integer, the others have no volume
// control at all. Returns nil when no player is installed.
func playbackCommand(file string, volume float64) *exec.Cmd {
	switch {
	case commandAvailable("paplay"):
		return exec.Command("paplay", "--volume", pulseVolume(volume), file)
	case commandAvailable("aplay"):
		return exec.Command("aplay", "-q", file)
	case commandAvailable("ffplay"):
		return exec.Command("ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", file)
	default:
		return nil
	}
}
