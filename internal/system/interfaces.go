// Package system provides abstractions for OS operations to enable testing.
package system

import (
	"context"
)

// Result holds the outcome of a finished command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// CommandExecutor abstracts command execution for testability.
type CommandExecutor interface {
	// Run executes a command to completion and captures stdout and stderr
	// separately. A non-zero exit status is reported in Result.ExitCode,
	// not as an error; err is only set when the command could not be
	// started or waited on.
	Run(ctx context.Context, name string, args ...string) (Result, error)

	// LookPath searches PATH for an executable named name.
	LookPath(name string) (string, error)
}

// Default instances using real OS operations.
var (
	defaultExecutor CommandExecutor = &osExecutor{}
)

// DefaultExecutor returns the default CommandExecutor implementation.
func DefaultExecutor() CommandExecutor {
	return defaultExecutor
}
