package main

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/abriel/cbz2pdf/internal/hints"
)

// ErrMissingTool is returned when a required external tool is not on PATH.
var ErrMissingTool = errors.New("required external tool not found")

// checkTools verifies that every named external tool is on PATH. It runs
// before any job is dispatched, so a missing dependency is a fatal startup
// error rather than a per-job failure.
func checkTools(tools ...string) error {
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%w: %s%s", ErrMissingTool, tool, hints.ForMissingTool(tool))
		}
	}
	return nil
}
