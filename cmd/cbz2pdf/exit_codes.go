package main

import (
	"errors"

	"github.com/abriel/cbz2pdf/internal/config"
)

// Exit codes for the cbz2pdf CLI.
// Skipped jobs alone never make the exit status nonzero.
const (
	ExitSuccess = 0 // All attempted jobs succeeded or were skipped
	ExitFailure = 1 // Job failures, missing tools, missing or invalid inputs
	ExitUsage   = 2 // Invalid flags or config
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrInvalidWorkers) ||
		errors.Is(err, ErrConflictingModes) {
		return ExitUsage
	}

	// Everything else collapses to the general failure code: job failures,
	// missing external tools, missing inputs, destination collisions.
	return ExitFailure
}
