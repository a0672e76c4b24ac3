// Package output renders the environment check report.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/aise-workshop/envcheck/pkg/check"
)

const ruleWidth = 70

// Hints lists installation instructions for a tool.
// Empty fields are not printed.
type Hints struct {
	Winget string // primary package manager
	Choco  string // secondary package manager
	Link   string // manual download page
	Note   string
}

// Printer writes the report to an io.Writer.
type Printer struct {
	w io.Writer
	p Palette
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, p: NewPalette(w, color)}
}

// Stdout returns a Printer for standard output, colored when the terminal supports it.
func Stdout() *Printer {
	return NewPrinter(os.Stdout, supportscolor.Stdout().SupportsColor)
}

// Header prints the title banner.
func (pr *Printer) Header(title string) {
	banner := pr.p.Bold.Inherit(pr.p.Blue)
	rule := strings.Repeat("=", ruleWidth)

	pr.println("")
	pr.println(banner.Render(rule))
	pr.println(banner.Render("  " + title))
	pr.println(banner.Render(rule))
	pr.println("")
}

// Section prints a section header.
func (pr *Printer) Section(title string) {
	pr.println("")
	pr.println(pr.p.Bold.Inherit(pr.p.Yellow).Render(title))
	pr.println(pr.p.Yellow.Render(strings.Repeat("-", ruleWidth)))
}

// Reference prints the repository a section belongs to.
func (pr *Printer) Reference(url string) {
	pr.printf("Repository: %s\n", url)
}

// Check prints one status line and, for failures, the installation hints.
func (pr *Printer) Check(r check.Result, required bool, hints Hints) {
	icon := pr.p.Green.Render("✅")
	if !r.OK() {
		icon = pr.p.Red.Render("❌")
	}
	tag := "Optional"
	if required {
		tag = "Required"
	}

	pr.printf("%s %s (%s): %s\n", icon, pr.p.Bold.Render(r.Name), tag, r.Summary)

	if r.OK() {
		return
	}
	pr.println("   " + pr.p.Red.Render("→ Installation needed"))
	pr.hint("Winget", hints.Winget)
	pr.hint("Chocolatey", hints.Choco)
	pr.hint("Manual", hints.Link)
	if hints.Note != "" {
		pr.println("   " + pr.p.Yellow.Render("  Note: "+hints.Note))
	}
}

func (pr *Printer) hint(label, value string) {
	if value == "" {
		return
	}
	pr.printf("   %s %s\n", pr.p.Blue.Render("• "+label+":"), value)
}

// Summary prints the final verdict.
func (pr *Printer) Summary(allPassed, requiredPassed bool) {
	switch {
	case allPassed:
		pr.println(pr.p.Bold.Inherit(pr.p.Green).Render("✅ All checks passed! You're ready for the workshop!"))
		pr.println("")
	case requiredPassed:
		pr.println(pr.p.Bold.Inherit(pr.p.Yellow).Render("⚠️  All required tools are installed!"))
		pr.println(pr.p.Yellow.Render("   Optional tools missing (won't block basic exercises)"))
		pr.println("")
	default:
		pr.println(pr.p.Bold.Inherit(pr.p.Red).Render("❌ Some required tools are missing."))
		pr.println(pr.p.Red.Render("   Please install them before the workshop."))
		pr.println("")
		pr.bootstrapTip()
	}
}

// bootstrapTip explains how to get a package manager for the hints above.
func (pr *Printer) bootstrapTip() {
	pr.println("")
	pr.println(pr.p.Bold.Inherit(pr.p.Blue).Render("Installation Help:"))
	pr.println(pr.p.Blue.Render("• If you don't have a package manager:"))
	pr.println("  - Install winget (Windows 11 has it built-in)")
	pr.println("  - Or install Chocolatey: https://chocolatey.org/install")
	pr.println("• Run commands in PowerShell (Admin) or Command Prompt (Admin)")
	pr.println("")
}

// Interrupted prints the notice for a run stopped by the user.
func (pr *Printer) Interrupted() {
	pr.println("")
	pr.println("")
	pr.println(pr.p.Yellow.Render("Check interrupted by user"))
}

func (pr *Printer) println(s string) {
	_, _ = fmt.Fprintln(pr.w, s)
}

func (pr *Printer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(pr.w, format, args...)
}
