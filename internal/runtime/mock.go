package runtime

import (
	"context"
	"sync"
)

// MockEngine is a mock implementation of Engine for testing
type MockEngine struct {
	mu sync.RWMutex

	// EngineName is returned by Name()
	EngineName string

	// Summaries is returned by List
	Summaries []Summary

	// Details maps container IDs to inspect results. IDs without an
	// entry inspect as an empty Detail.
	Details map[string]Detail

	// ListErr is returned by List when set
	ListErr error

	// CallLog records all method calls for verification
	CallLog []MockCall
}

// MockCall represents a recorded method call
type MockCall struct {
	Method string
	Args   []interface{}
}

// NewMockEngine creates a new mock engine
func NewMockEngine() *MockEngine {
	return &MockEngine{
		EngineName: "mock",
		Details:    make(map[string]Detail),
		CallLog:    make([]MockCall, 0),
	}
}

func (m *MockEngine) record(method string, args ...interface{}) {
	m.CallLog = append(m.CallLog, MockCall{Method: method, Args: args})
}

// AddContainer adds a listed container and its inspect detail
func (m *MockEngine) AddContainer(id, name string, detail Detail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Summaries = append(m.Summaries, Summary{"ID": id, "Names": name})
	if detail != nil {
		m.Details[id] = detail
	}
}

// GetCallsFor returns all calls for a specific method
func (m *MockEngine) GetCallsFor(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var calls []MockCall
	for _, call := range m.CallLog {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// Name returns the engine identifier
func (m *MockEngine) Name() string {
	return m.EngineName
}

// List returns the configured summaries
func (m *MockEngine) List(ctx context.Context) ([]Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("List")

	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]Summary, len(m.Summaries))
	copy(out, m.Summaries)
	return out, nil
}

// Inspect returns the configured detail for id
func (m *MockEngine) Inspect(ctx context.Context, id string) Detail {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Inspect", id)

	if d, ok := m.Details[id]; ok {
		return d
	}
	return Detail{}
}

// Ensure MockEngine implements Engine
var _ Engine = (*MockEngine)(nil)
