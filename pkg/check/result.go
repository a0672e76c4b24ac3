package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single tool check.
type Result struct {
	Name    string // e.g., "Java JDK 21+", "Docker"
	Status  Status // OK or FAIL
	Summary string // human-readable version summary, e.g., "JDK 21"
	Output  string // raw probe output, empty when the probe failed
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
