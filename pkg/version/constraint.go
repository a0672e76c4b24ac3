package version

import "github.com/Masterminds/semver/v3"

// Constraint is a minimum-version policy such as ">= 21" or "^3.12".
type Constraint struct {
	expr string
	c    *semver.Constraints
}

// NewConstraint parses a semver constraint expression.
func NewConstraint(expr string) (*Constraint, error) {
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, err
	}
	return &Constraint{expr: expr, c: c}, nil
}

// MustConstraint is like NewConstraint but panics on an invalid expression.
// It is meant for constraints declared as package-level values.
func MustConstraint(expr string) *Constraint {
	c, err := NewConstraint(expr)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the original expression.
func (c *Constraint) String() string {
	return c.expr
}

// Allows reports whether v satisfies the constraint.
func (c *Constraint) Allows(v Version) bool {
	sv := semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Patch), "", "")
	return c.c.Check(sv)
}
