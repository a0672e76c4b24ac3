package check

import (
	"context"

	"github.com/aise-workshop/envcheck/pkg/exec"
)

// Checker is implemented by all check types.
// Each check probes one tool through the given runner
// and returns a Result indicating success or failure.
//
// Implementations:
//   - cmdcheck.Presence: passes whenever the tool runs
//   - cmdcheck.Minimum: enforces a minimum version
type Checker interface {
	Run(ctx context.Context, runner exec.Runner) Result
}
