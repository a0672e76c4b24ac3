package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aise-workshop/envcheck/pkg/exec"
	"github.com/aise-workshop/envcheck/pkg/output"
	"github.com/aise-workshop/envcheck/pkg/workshop"
)

// Version is set at build time via ldflags
var Version = "dev"

// ErrCheckFailed is returned when a required tool failed its check.
var ErrCheckFailed = errors.New("required tools missing")

var verbose bool

// interruptSignals cancel the run and exit with code 130.
var interruptSignals = []os.Signal{os.Interrupt}

// newRunner builds the probe runner; tests replace it.
var newRunner = func(logger *log.Logger) exec.Runner {
	return &exec.RealRunner{Logger: logger}
}

var rootCmd = &cobra.Command{
	Use:   "envcheck",
	Short: "Check that the tools needed for the AI4SE workshop are installed",
	Long: `envcheck probes this machine for the tools used in the AI4SE workshop
(Java JDK 21+, Docker, Python 3.12+, Maven, Node.js, Git) and prints
installation hints for anything missing.

Exit codes:
  0    all required tools are installed (optional tools may be missing)
  1    at least one required tool is missing or too old
  130  interrupted`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runChecks,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each probe to stderr")
}

func main() {
	os.Exit(run())
}

// run executes the root command and maps its outcome to an exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrCheckFailed) && !errors.Is(err, workshop.ErrInterrupted) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return workshop.ExitOK
	case errors.Is(err, workshop.ErrInterrupted):
		return workshop.ExitInterrupted
	default:
		return workshop.ExitFailed
	}
}

func runChecks(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	pr := newPrinter(cmd.OutOrStdout())

	summary, err := workshop.Run(cmd.Context(), workshop.Catalog(), newRunner(logger), pr)
	if err != nil {
		if errors.Is(err, workshop.ErrInterrupted) {
			pr.Interrupted()
		}
		return err
	}

	logger.Debug("run complete", "all_passed", summary.AllPassed, "required_passed", summary.RequiredPassed)
	if summary.ExitCode() != workshop.ExitOK {
		return ErrCheckFailed
	}
	return nil
}

func newLogger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "envcheck",
	})
}

func newPrinter(w io.Writer) *output.Printer {
	if w == os.Stdout {
		return output.Stdout()
	}
	return output.NewPrinter(w, false)
}
