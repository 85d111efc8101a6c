package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for edawatch
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitNoRuntime    = 2
	ExitListFailed   = 3
	ExitConfigError  = 4
	ExitReportError  = 5
)

// WatchError is the base error type for edawatch
type WatchError struct {
	Code    int
	Message string
	Cause   error
}

func (e *WatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *WatchError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *WatchError) ExitCode() int {
	return e.Code
}

// New creates a new WatchError
func New(code int, message string) *WatchError {
	return &WatchError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a WatchError
func Wrap(code int, message string, cause error) *WatchError {
	return &WatchError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// NoRuntime returns an error when no container engine could be found
func NoRuntime(tried []string) *WatchError {
	return New(ExitNoRuntime, fmt.Sprintf("no supported container runtime found in PATH (tried: %s)", strings.Join(tried, ", ")))
}

// ListFailed returns an error for a failed container listing.
// stderr is the engine's captured error stream.
func ListFailed(engine, stderr string, cause error) *WatchError {
	msg := fmt.Sprintf("failed to list containers with %s", engine)
	if stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, stderr)
	}
	return Wrap(ExitListFailed, msg, cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *WatchError {
	return Wrap(ExitConfigError, message, cause)
}

// ReportError returns an error for failures reading inputs or writing a report
func ReportError(op string, cause error) *WatchError {
	return Wrap(ExitReportError, fmt.Sprintf("report %s failed", op), cause)
}

// Interrupted returns an error for a pass cut short by cancellation or
// the run timeout. Its records are incomplete and must not be reported.
func Interrupted(cause error) *WatchError {
	return Wrap(ExitGeneralError, "health check interrupted", cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *WatchError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var watchErr *WatchError
	if errors.As(err, &watchErr) {
		return watchErr.ExitCode()
	}
	return ExitGeneralError
}
