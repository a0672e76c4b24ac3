package testutil

import (
	"context"
	"strings"

	"github.com/aise-workshop/envcheck/pkg/exec"
)

// MockRunner is a test double for exec.Runner.
// Commands without an entry in Results behave as not installed.
type MockRunner struct {
	Results map[string]exec.Result // keyed by command name
	RunFunc func(ctx context.Context, name string, args ...string) exec.Result
	Calls   []string // "name arg1 arg2" for every Run call
}

// Run records the call and returns the configured result.
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) exec.Result {
	m.Calls = append(m.Calls, strings.Join(append([]string{name}, args...), " "))
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return m.Results[name]
}

// Installed returns a successful probe result with the given output.
func Installed(output string) exec.Result {
	return exec.Result{Succeeded: true, Output: output}
}

// Broken returns a probe result for a tool that ran but exited non-zero.
func Broken(output string) exec.Result {
	return exec.Result{Succeeded: false, Output: output}
}

// AllTools returns probe results for a machine with every workshop tool installed.
func AllTools() map[string]exec.Result {
	return map[string]exec.Result{
		"java":   Installed("openjdk version \"21.0.1\" 2023-10-17\nOpenJDK Runtime Environment (build 21.0.1+12-29)"),
		"docker": Installed("Docker version 24.0.5, build ced0996"),
		"python": Installed("Python 3.12.1"),
		"mvn":    Installed("Apache Maven 3.9.6 (bc0240f3c744dd6b6ec2920b3cd08dcc295161ae)"),
		"node":   Installed("v20.11.1"),
		"git":    Installed("git version 2.43.0"),
	}
}

