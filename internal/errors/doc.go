// Package errors provides typed errors with exit codes for edawatch.
//
// # Error Types
//
// WatchError is the base error type that wraps an error with an exit code:
//
//	type WatchError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors, bad flags
//	ExitNoRuntime    = 2  // Neither docker nor podman on PATH
//	ExitListFailed   = 3  // Container listing failed
//	ExitConfigError  = 4  // Configuration file or environment error
//	ExitReportError  = 5  // Compliance inputs unreadable or report unwritable
//
// Failures that only affect a single container (inspect errors, bad
// timestamps) are never surfaced as errors; they degrade to "unknown".
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
