package cbz2pdf

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandRunner abstracts external tool execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	// Run executes the named tool and waits for it. It returns the
	// captured standard error output alongside the execution error, so
	// failures carry the tool's own diagnostics.
	Run(ctx context.Context, name string, args ...string) (stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stderr.String(), err
}
