package version

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Version represents a version with major, minor, patch components.
// Components missing from the probed output are zero.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Short returns the first n components, e.g. Short(2) of 3.12.1 is "3.12".
func (v Version) Short(n int) string {
	parts := []int{v.Major, v.Minor, v.Patch}
	if n < 1 {
		n = 1
	}
	if n > len(parts) {
		n = len(parts)
	}
	s := make([]string, n)
	for i := range s {
		s[i] = strconv.Itoa(parts[i])
	}
	return strings.Join(s, ".")
}

// Match extracts a version from s using re.
// Capture group 1 is the major component; optional groups 2 and 3 are
// minor and patch. Groups that are absent or did not participate are zero;
// components too large for an int are clamped to math.MaxInt.
func Match(re *regexp.Regexp, s string) (Version, error) {
	matches := re.FindStringSubmatch(s)
	if len(matches) < 2 || matches[1] == "" {
		return Version{}, fmt.Errorf("no version found in: %q", s)
	}

	var parts [3]int
	for i := 0; i < len(parts) && i+1 < len(matches); i++ {
		if matches[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(matches[i+1])
		if errors.Is(err, strconv.ErrRange) {
			n, err = math.MaxInt, nil
		}
		if err != nil {
			return Version{}, fmt.Errorf("invalid version component %q: %w", matches[i+1], err)
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}
