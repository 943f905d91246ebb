package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/studybuddy-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}

	return m.Text, m.Err
}

// Calls returns how many times Generate was called.
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns a copy of every prompt passed to Generate.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// NewMockGeneratorWithText creates a MockGenerator that returns text.
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails creates a MockGenerator that simulates an upstream failure
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrUpstreamStatus)
}

var _ generation.Generator = (*MockGenerator)(nil)
