//go:build unix

package exec

import (
	"os/exec"
	"syscall"
)

// killProcessGroup starts the probe in its own process group and kills the
// whole group on cancellation, so wrapper scripts (mvn, gradle) do not leave
// a JVM running after a timeout.
func killProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
