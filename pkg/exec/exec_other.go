//go:build !unix

package exec

import "os/exec"

// killProcessGroup keeps the default cancellation, which kills the probe
// process only. WaitDelay still bounds the wait for its pipes.
func killProcessGroup(cmd *exec.Cmd) {}
