package main

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Environment holds injectable output streams for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// mu serializes writes so concurrent workers never interleave
	// partial lines on the same stream.
	mu sync.Mutex
}

// DefaultEnv returns production dependencies.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// logf writes one formatted line to w under the environment's lock.
func (e *Environment) logf(w io.Writer, format string, args ...interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintf(w, format, args...)
}
