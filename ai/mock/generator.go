package mock

import (
	"context"
	"strings"

	"github.com/poiesic/lexquery/ai"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, uses default canned behavior.
	GenerateFunc func(ctx context.Context, req *ai.GenerateRequest) (string, error)

	callCount int
	requests  []*ai.GenerateRequest
}

// NewMockGenerator creates a mock generator with default canned behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate records the request and produces a deterministic response.
// Default behavior: echoes the first line of the prompt prefixed with
// "generated: ", which is stable enough for assertions.
func (m *MockGenerator) Generate(ctx context.Context, req *ai.GenerateRequest) (string, error) {
	m.callCount++
	m.requests = append(m.requests, req)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}

	firstLine := req.Prompt
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}
	return "generated: " + strings.TrimSpace(firstLine), nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Requests returns the recorded generate requests in call order.
func (m *MockGenerator) Requests() []*ai.GenerateRequest {
	return m.requests
}

// LastRequest returns the most recent request, or nil if none were made.
func (m *MockGenerator) LastRequest() *ai.GenerateRequest {
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// Reset clears the call count, recorded requests, and custom functions.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.requests = nil
	m.GenerateFunc = nil
}
