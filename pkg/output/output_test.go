package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aise-workshop/envcheck/pkg/check"
)

var javaHints = Hints{
	Winget: "winget install Oracle.JDK.21",
	Choco:  "choco install openjdk --version=21.0.0",
	Link:   "https://www.oracle.com/java/technologies/downloads/#java21",
	Note:   "OpenJDK alternatives: Temurin, Microsoft Build of OpenJDK",
}

func plainPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf, false), &buf
}

func TestHeader(t *testing.T) {
	pr, buf := plainPrinter()

	pr.Header("AI4SE Workshop - Environment Check")

	rule := strings.Repeat("=", 70)
	want := "\n" + rule + "\n  AI4SE Workshop - Environment Check\n" + rule + "\n\n"
	assert.Equal(t, want, buf.String())
}

func TestSection(t *testing.T) {
	pr, buf := plainPrinter()

	pr.Section("Part 1: Agent Backend Demo")
	pr.Reference("https://github.com/WeiZhang101/agent-backend-demo")

	want := "\nPart 1: Agent Backend Demo\n" + strings.Repeat("-", 70) +
		"\nRepository: https://github.com/WeiZhang101/agent-backend-demo\n"
	assert.Equal(t, want, buf.String())
}

func TestCheck_Passed(t *testing.T) {
	pr, buf := plainPrinter()

	pr.Check(check.Result{Name: "Java JDK 21+", Status: check.StatusOK, Summary: "JDK 21"}, true, javaHints)

	assert.Equal(t, "✅ Java JDK 21+ (Required): JDK 21\n", buf.String())
}

func TestCheck_FailedPrintsHintsInOrder(t *testing.T) {
	pr, buf := plainPrinter()

	pr.Check(check.Result{Name: "Java JDK 21+", Status: check.StatusFail, Summary: "JDK 17 (need 21+)"}, true, javaHints)

	want := "❌ Java JDK 21+ (Required): JDK 17 (need 21+)\n" +
		"   → Installation needed\n" +
		"   • Winget: winget install Oracle.JDK.21\n" +
		"   • Chocolatey: choco install openjdk --version=21.0.0\n" +
		"   • Manual: https://www.oracle.com/java/technologies/downloads/#java21\n" +
		"     Note: OpenJDK alternatives: Temurin, Microsoft Build of OpenJDK\n"
	assert.Equal(t, want, buf.String())
}

func TestCheck_SkipsMissingHints(t *testing.T) {
	pr, buf := plainPrinter()

	pr.Check(check.Result{Name: "Docker", Status: check.StatusFail, Summary: "Not installed"}, false,
		Hints{Link: "https://www.docker.com/products/docker-desktop/"})

	want := "❌ Docker (Optional): Not installed\n" +
		"   → Installation needed\n" +
		"   • Manual: https://www.docker.com/products/docker-desktop/\n"
	assert.Equal(t, want, buf.String())
}

func TestCheck_FailedWithoutHints(t *testing.T) {
	pr, buf := plainPrinter()

	pr.Check(check.Result{Name: "Git", Status: check.StatusFail, Summary: "Not installed"}, true, Hints{})

	assert.Equal(t, "❌ Git (Required): Not installed\n   → Installation needed\n", buf.String())
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name           string
		allPassed      bool
		requiredPassed bool
		contains       string
		bootstrapTip   bool
	}{
		{"all passed", true, true, "✅ All checks passed! You're ready for the workshop!", false},
		{"optional missing", false, true, "⚠️  All required tools are installed!\n   Optional tools missing (won't block basic exercises)\n", false},
		{"required missing", false, false, "❌ Some required tools are missing.\n   Please install them before the workshop.\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr, buf := plainPrinter()

			pr.Summary(tt.allPassed, tt.requiredPassed)

			out := buf.String()
			assert.Contains(t, out, tt.contains)
			assert.Equal(t, tt.bootstrapTip, strings.Contains(out, "Installation Help:"))
			assert.Equal(t, tt.bootstrapTip, strings.Contains(out, "https://chocolatey.org/install"))
		})
	}
}

func TestInterrupted(t *testing.T) {
	pr, buf := plainPrinter()

	pr.Interrupted()

	assert.Equal(t, "\n\nCheck interrupted by user\n", buf.String())
}

func TestPalette_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPalette(&buf, false)

	for _, s := range []string{
		p.Green.Render("ok"),
		p.Red.Render("ok"),
		p.Yellow.Render("ok"),
		p.Blue.Render("ok"),
		p.Bold.Render("ok"),
	} {
		assert.Equal(t, "ok", s)
	}
}

func TestPalette_Color(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, true)

	pr.Check(check.Result{Name: "Git", Status: check.StatusOK, Summary: "v2.43.0"}, true, Hints{})

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "v2.43.0")
}
