// Package exec runs tool probes as bounded child processes.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a single probe.
const DefaultTimeout = 10 * time.Second

// waitDelay bounds how long Run waits for output pipes after the probe is killed.
const waitDelay = 500 * time.Millisecond

// Result is the outcome of one probe.
// A probe that could not be started, timed out, or was canceled
// has Succeeded false and an empty Output.
type Result struct {
	Succeeded bool
	Output    string // stdout followed by stderr, trimmed
}

// Runner abstracts command execution for testability.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// RealRunner executes probes as child processes.
type RealRunner struct {
	Timeout time.Duration // per-probe timeout (default: DefaultTimeout)
	Logger  *log.Logger   // debug trace of probes (default: log.Default())
}

// Run executes name with args and reports whether it exited with code 0.
func (r *RealRunner) Run(ctx context.Context, name string, args ...string) Result {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	killProcessGroup(cmd)

	logger := r.logger().With("cmd", name, "args", args)
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil && ctx.Err() != nil {
		logger.Debug("probe aborted", "elapsed", elapsed, "reason", ctx.Err())
		return Result{}
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		logger.Debug("probe could not run", "err", err)
		return Result{}
	}

	result := Result{
		Succeeded: err == nil,
		Output:    strings.TrimSpace(stdout.String() + stderr.String()),
	}
	logger.Debug("probe finished", "ok", result.Succeeded, "elapsed", elapsed)
	return result
}

func (r *RealRunner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}
