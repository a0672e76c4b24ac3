package workshop

import (
	"context"
	"errors"

	"github.com/aise-workshop/envcheck/pkg/exec"
	"github.com/aise-workshop/envcheck/pkg/output"
)

// ErrInterrupted is returned when the run is canceled before all checks complete.
var ErrInterrupted = errors.New("check interrupted by user")

// Exit codes.
const (
	ExitOK          = 0
	ExitFailed      = 1
	ExitInterrupted = 130
)

// Summary aggregates check outcomes over a run.
type Summary struct {
	AllPassed      bool // no check failed
	RequiredPassed bool // no required check failed
}

// ExitCode returns 0 when every required tool passed, 1 otherwise.
func (s Summary) ExitCode() int {
	if s.RequiredPassed {
		return ExitOK
	}
	return ExitFailed
}

// Run executes every check in parts, printing each result and the final summary.
// A failing check never stops the run; only cancellation of ctx does.
func Run(ctx context.Context, parts []Part, runner exec.Runner, pr *output.Printer) (Summary, error) {
	s := Summary{AllPassed: true, RequiredPassed: true}

	pr.Header(Title)

	for _, part := range parts {
		pr.Section(part.Title)
		if part.Repository != "" {
			pr.Reference(part.Repository)
		}

		for _, tool := range part.Tools {
			if ctx.Err() != nil {
				return s, ErrInterrupted
			}

			result := tool.Check.Run(ctx, runner)
			if ctx.Err() != nil {
				// The probe was killed by the interrupt; its result is meaningless.
				return s, ErrInterrupted
			}

			pr.Check(result, tool.Required, tool.Hints)
			if !result.OK() {
				s.AllPassed = false
				if tool.Required {
					s.RequiredPassed = false
				}
			}
		}
	}

	pr.Section("Summary")
	pr.Summary(s.AllPassed, s.RequiredPassed)
	return s, nil
}
