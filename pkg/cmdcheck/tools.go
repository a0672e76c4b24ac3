package cmdcheck

import (
	"regexp"

	"github.com/aise-workshop/envcheck/pkg/version"
)

var (
	javaVersionRe   = regexp.MustCompile(`version "?(\d+)\.?(\d+)?`)
	dockerVersionRe = regexp.MustCompile(`Docker version ([\d.]+)`)
	pythonVersionRe = regexp.MustCompile(`Python (\d+)\.(\d+)`)
	mavenVersionRe  = regexp.MustCompile(`Apache Maven ([\d.]+)`)
	gitVersionRe    = regexp.MustCompile(`git version ([\d.]+)`)
)

// Java checks for a JDK with major version 21 or newer.
// java -version prints to stderr, which the runner captures.
func Java() *Minimum {
	return &Minimum{
		Name:       "Java JDK 21+",
		Commands:   [][]string{{"java", "-version"}},
		Pattern:    javaVersionRe,
		Constraint: version.MustConstraint(">= 21"),
		Label:      "JDK",
		Precision:  1,
		Need:       "21+",
	}
}

// Docker checks that the docker CLI is installed.
func Docker() *Presence {
	return &Presence{
		Name:    "Docker",
		Command: []string{"docker", "--version"},
		Pattern: dockerVersionRe,
		Format:  "v%s",
	}
}

// Python checks for Python 3.12 or a newer 3.x, trying python before python3.
func Python() *Minimum {
	return &Minimum{
		Name:       "Python 3.12+",
		Commands:   [][]string{{"python", "--version"}, {"python3", "--version"}},
		Pattern:    pythonVersionRe,
		Constraint: version.MustConstraint("^3.12"),
		Label:      "Python",
		Precision:  2,
		Need:       "3.12+",
	}
}

// Maven checks that mvn is installed.
func Maven() *Presence {
	return &Presence{
		Name:    "Maven",
		Command: []string{"mvn", "-version"},
		Pattern: mavenVersionRe,
		Format:  "Maven %s",
	}
}

// Node checks that node is installed and reports its raw version output.
func Node() *Presence {
	return &Presence{
		Name:    "Node.js",
		Command: []string{"node", "--version"},
	}
}

// Git checks that git is installed.
func Git() *Presence {
	return &Presence{
		Name:    "Git",
		Command: []string{"git", "--version"},
		Pattern: gitVersionRe,
		Format:  "v%s",
	}
}
