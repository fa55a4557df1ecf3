package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spboyer/rocauc/internal/metrics"
)

// Exit codes for different failure modes
const (
	ExitSuccess         = 0 // Curve computed
	ExitDegenerateInput = 1 // Samples lack a class or carry an invalid label/score
	ExitError           = 2 // Configuration, I/O or rendering error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, metrics.ErrDegenerateInput),
		errors.Is(err, metrics.ErrInvalidLabel),
		errors.Is(err, metrics.ErrInvalidScore):
		return ExitDegenerateInput
	default:
		return ExitError
	}
}
