package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestWatchError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *WatchError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestWatchError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestNoRuntime(t *testing.T) {
	err := NoRuntime([]string{"docker", "podman"})

	if err.Code != ExitNoRuntime {
		t.Errorf("Code = %d, want %d", err.Code, ExitNoRuntime)
	}

	want := "no supported container runtime found in PATH (tried: docker, podman)"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestListFailed(t *testing.T) {
	cause := fmt.Errorf("exit status 1")

	err := ListFailed("docker", "Cannot connect to the Docker daemon", cause)
	if err.Code != ExitListFailed {
		t.Errorf("Code = %d, want %d", err.Code, ExitListFailed)
	}
	want := "failed to list containers with docker: Cannot connect to the Docker daemon: exit status 1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	noStderr := ListFailed("podman", "", cause)
	if noStderr.Message != "failed to list containers with podman" {
		t.Errorf("Message = %q", noStderr.Message)
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("invalid yaml")
	err := ConfigError("failed to parse config", cause)

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestReportError(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := ReportError("write", cause)

	if err.Code != ExitReportError {
		t.Errorf("Code = %d, want %d", err.Code, ExitReportError)
	}
	if err.Message != "report write failed" {
		t.Errorf("Message = %q, want %q", err.Message, "report write failed")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "WatchError",
			err:      NoRuntime(nil),
			wantCode: ExitNoRuntime,
		},
		{
			name:     "wrapped WatchError",
			err:      fmt.Errorf("outer: %w", ListFailed("docker", "", nil)),
			wantCode: ExitListFailed,
		},
		{
			name:     "validation",
			err:      ValidationError("bad flag"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestInterrupted(t *testing.T) {
	err := Interrupted(context.DeadlineExceeded)

	if err.Code != ExitGeneralError {
		t.Errorf("Code = %d, want %d", err.Code, ExitGeneralError)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("cause should be reachable through Unwrap")
	}
	if err.Error() != "health check interrupted: context deadline exceeded" {
		t.Errorf("Error() = %q", err.Error())
	}
}
