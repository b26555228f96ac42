//go:build !unix && !windows

package player

import "os/exec"

// startDetached starts the command without waiting on it.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
