//go:build unix

package player

import (
	"os/exec"
	"syscall"
)

// startDetached launches the command in its own session so the child
// keeps running after the parent exits. The parent never waits on it.
func startDetached(cmd *exec.Cmd) error {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	// Release lets the process outlive us without leaving a zombie slot
	// tied to this parent.
	return cmd.Process.Release()
}
