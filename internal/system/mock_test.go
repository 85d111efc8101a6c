package system

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestMockExecutor_Run(t *testing.T) {
	mock := NewMockExecutor()
	mock.AddResponse("echo", "hello\n")

	result, err := mock.Run(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.Stdout != "hello\n" {
		t.Errorf("Stdout = %q, want %q", result.Stdout, "hello\n")
	}
	if !result.Success() {
		t.Errorf("Success() = false, want true")
	}

	cmd, ok := mock.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.Name != "echo" {
		t.Errorf("Command name = %q, want %q", cmd.Name, "echo")
	}
}

func TestMockExecutor_LongestPrefixWins(t *testing.T) {
	mock := NewMockExecutor()
	mock.AddResponse("docker", "generic")
	mock.AddResponse("docker inspect", "any inspect")
	mock.AddFailure("docker inspect abc", 1, "Error: No such object: abc")

	tests := []struct {
		args     []string
		wantOut  string
		wantCode int
	}{
		{[]string{"ps", "-a"}, "generic", 0},
		{[]string{"inspect", "def"}, "any inspect", 0},
		{[]string{"inspect", "abc"}, "", 1},
	}

	for _, tt := range tests {
		result, err := mock.Run(context.Background(), "docker", tt.args...)
		if err != nil {
			t.Fatalf("Run(%v) error: %v", tt.args, err)
		}
		if result.Stdout != tt.wantOut || result.ExitCode != tt.wantCode {
			t.Errorf("Run(%v) = %+v, want stdout %q code %d", tt.args, result, tt.wantOut, tt.wantCode)
		}
	}
}

func TestMockExecutor_DefaultResponse(t *testing.T) {
	mock := NewMockExecutor()
	mock.DefaultResponse = MockResponse{Result: Result{Stdout: "default"}}

	result, err := mock.Run(context.Background(), "unknown", "command")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.Stdout != "default" {
		t.Errorf("Stdout = %q, want %q", result.Stdout, "default")
	}
}

func TestMockExecutor_LookPath(t *testing.T) {
	mock := NewMockExecutor()
	mock.AddPath("podman")

	if p, err := mock.LookPath("podman"); err != nil || p != "/usr/bin/podman" {
		t.Errorf("LookPath(podman) = %q, %v", p, err)
	}

	_, err := mock.LookPath("docker")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("LookPath(docker) error = %v, want exec.ErrNotFound", err)
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	mock := NewMockExecutor()
	mock.Run(context.Background(), "cmd1")
	mock.Run(context.Background(), "cmd2", "--flag")

	lines := mock.CommandLines()
	if len(lines) != 2 || lines[1] != "cmd2 --flag" {
		t.Errorf("CommandLines() = %v", lines)
	}

	mock.Reset()

	if len(mock.Commands) != 0 {
		t.Errorf("Commands length after reset = %d, want 0", len(mock.Commands))
	}
}

func TestCommandLine(t *testing.T) {
	if got := CommandLine("ansible", "--version"); got != "ansible --version" {
		t.Errorf("CommandLine() = %q, want %q", got, "ansible --version")
	}
	if got := CommandLine("echo", "a b"); got != "echo 'a b'" {
		t.Errorf("CommandLine() = %q, want %q", got, "echo 'a b'")
	}
}

func TestOSExecutor_ExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	e := &osExecutor{}
	result, err := e.Run(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if result.Stdout != "out\n" || result.Stderr != "err\n" {
		t.Errorf("Stdout = %q, Stderr = %q", result.Stdout, result.Stderr)
	}
}

func TestOSExecutor_MissingBinary(t *testing.T) {
	e := &osExecutor{}
	result, err := e.Run(context.Background(), "edawatch-definitely-missing-binary")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if result.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", result.ExitCode)
	}
}
