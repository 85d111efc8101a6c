package system

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records all executed commands for verification.
	Commands []MockCommand

	// Responses maps command patterns to responses.
	// Key format: "command arg1 arg2...". The longest matching prefix of
	// the full command line wins, so "docker inspect abc" beats
	// "docker inspect" which beats "docker".
	Responses map[string]MockResponse

	// DefaultResponse is used when no matching response is found.
	DefaultResponse MockResponse

	// Paths lists executables that LookPath should find, mapped to
	// their resolved location.
	Paths map[string]string
}

// MockCommand records an executed command.
type MockCommand struct {
	Name string
	Args []string
}

// MockResponse defines the response for a command.
type MockResponse struct {
	Result Result
	Err    error
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:  make([]MockCommand, 0),
		Responses: make(map[string]MockResponse),
		Paths:     make(map[string]string),
	}
}

// AddResponse adds a successful response with the given stdout.
func (m *MockExecutor) AddResponse(pattern string, stdout string) {
	m.AddResult(pattern, Result{Stdout: stdout}, nil)
}

// AddFailure adds a response that exits with code and writes stderr.
func (m *MockExecutor) AddFailure(pattern string, code int, stderr string) {
	m.AddResult(pattern, Result{ExitCode: code, Stderr: stderr}, nil)
}

// AddResult adds a fully specified response for a command pattern.
func (m *MockExecutor) AddResult(pattern string, result Result, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = MockResponse{Result: result, Err: err}
}

// AddPath makes LookPath resolve name.
func (m *MockExecutor) AddPath(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Paths[name] = "/usr/bin/" + name
}

func (m *MockExecutor) Run(ctx context.Context, name string, args ...string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Commands = append(m.Commands, MockCommand{Name: name, Args: args})

	parts := append([]string{name}, args...)
	for i := len(parts); i > 0; i-- {
		if resp, ok := m.Responses[strings.Join(parts[:i], " ")]; ok {
			return resp.Result, resp.Err
		}
	}

	return m.DefaultResponse.Result, m.DefaultResponse.Err
}

func (m *MockExecutor) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// LastCommand returns the most recently executed command.
func (m *MockExecutor) LastCommand() (MockCommand, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return MockCommand{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}

// CommandLines returns every recorded command as "name arg1 arg2".
func (m *MockExecutor) CommandLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, 0, len(m.Commands))
	for _, c := range m.Commands {
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " "))))
	}
	return lines
}

// Reset clears all recorded commands.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = make([]MockCommand, 0)
}
