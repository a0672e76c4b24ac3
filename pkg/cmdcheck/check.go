package cmdcheck

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aise-workshop/envcheck/pkg/check"
	"github.com/aise-workshop/envcheck/pkg/exec"
	"github.com/aise-workshop/envcheck/pkg/version"
)

// Summaries shared by all checks.
const (
	NotInstalled   = "Not installed"
	Installed      = "Installed"
	UnknownVersion = "Unknown version"
)

// Presence passes whenever the tool runs successfully.
type Presence struct {
	Name    string         // display name
	Command []string       // probe command and args, e.g. {"git", "--version"}
	Pattern *regexp.Regexp // optional; capture group 1 feeds Format
	Format  string         // summary format for the captured token, e.g. "v%s"
}

// Run executes the presence check.
func (c *Presence) Run(ctx context.Context, runner exec.Runner) check.Result {
	result := check.Result{Name: c.Name}

	probe := runner.Run(ctx, c.Command[0], c.Command[1:]...)
	if !probe.Succeeded {
		return result.Fail(NotInstalled)
	}
	result.WithOutput(probe.Output)

	if c.Pattern == nil {
		return result.Pass(probe.Output)
	}

	if m := c.Pattern.FindStringSubmatch(probe.Output); len(m) > 1 && m[1] != "" {
		return result.Passf(c.Format, m[1])
	}
	return result.Pass(Installed)
}

// Minimum passes when the extracted version satisfies Constraint.
type Minimum struct {
	Name       string              // display name
	Commands   [][]string          // probe commands; later entries are fallbacks
	Pattern    *regexp.Regexp      // group 1 major, optional groups 2-3 minor and patch
	Constraint *version.Constraint // e.g. ">= 21"
	Label      string              // summary prefix, e.g. "JDK"
	Precision  int                 // version components shown in the summary
	Need       string              // requirement shown on failure, e.g. "21+"
}

// Run executes the minimum-version check.
func (c *Minimum) Run(ctx context.Context, runner exec.Runner) check.Result {
	result := check.Result{Name: c.Name}

	probe, ok := c.probe(ctx, runner)
	if !ok {
		return result.Fail(NotInstalled)
	}
	result.WithOutput(probe.Output)

	v, err := version.Match(c.Pattern, probe.Output)
	if err != nil {
		return result.Fail(UnknownVersion)
	}

	detected := fmt.Sprintf("%s %s", c.Label, v.Short(c.Precision))
	if !c.Constraint.Allows(v) {
		return result.Failf("%s (need %s)", detected, c.Need)
	}
	return result.Pass(detected)
}

// probe runs the commands in order and stops at the first one that succeeds.
func (c *Minimum) probe(ctx context.Context, runner exec.Runner) (exec.Result, bool) {
	for _, cmd := range c.Commands {
		if ctx.Err() != nil {
			break
		}
		if r := runner.Run(ctx, cmd[0], cmd[1:]...); r.Succeeded {
			return r, true
		}
	}
	return exec.Result{}, false
}
