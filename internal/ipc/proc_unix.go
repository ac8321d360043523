//go:build unix

package ipc

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcAttr puts the child in its own process group and arranges for
// context cancellation to kill the whole group (swaymsg/i3-msg never
// spawn children, but a killed single PID can still leave a wedged
// process-group leader behind on some setups).
func setProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
}
