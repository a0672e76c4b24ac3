package check

import "fmt"

// Pass sets the result to passed status with a summary.
func (r *Result) Pass(summary string) Result {
	r.Status = StatusOK
	r.Summary = summary
	return *r
}

// Passf sets the result to passed status with a formatted summary.
func (r *Result) Passf(format string, args ...interface{}) Result {
	return r.Pass(fmt.Sprintf(format, args...))
}

// Fail sets the result to failed status with a summary.
func (r *Result) Fail(summary string) Result {
	r.Status = StatusFail
	r.Summary = summary
	return *r
}

// Failf sets the result to failed status with a formatted summary.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...))
}

// WithOutput records the raw probe output on the result.
func (r *Result) WithOutput(output string) *Result {
	r.Output = output
	return r
}
