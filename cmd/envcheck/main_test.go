package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/aise-workshop/envcheck/pkg/workshop"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"envcheck": run,
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}

func TestInterruptSignals(t *testing.T) {
	if len(interruptSignals) != 1 || interruptSignals[0] != os.Interrupt {
		t.Errorf("interruptSignals = %v, want only os.Interrupt", interruptSignals)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"required missing", ErrCheckFailed, 1},
		{"interrupted", workshop.ErrInterrupted, 130},
		{"wrapped interrupt", fmt.Errorf("run: %w", workshop.ErrInterrupted), 130},
		{"usage error", errors.New(`unknown flag: --nope`), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
