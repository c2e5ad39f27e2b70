package mock

import (
	"context"

	"github.com/poiesic/lexquery/core"
)

// MockPassageSearcher is a test double for retrieval.PassageSearcher.
// It allows custom behavior injection via function fields.
type MockPassageSearcher struct {
	// SearchFunc is called by Search if set.
	// If nil, returns an empty result list.
	SearchFunc func(ctx context.Context, query string, topK int) ([]core.ResultItem, error)

	callCount int
	queries   []string
}

// NewMockPassageSearcher creates a mock passage searcher.
// Note: Returns concrete type to allow test assertions.
func NewMockPassageSearcher() *MockPassageSearcher {
	return &MockPassageSearcher{}
}

// Search records the query and delegates to SearchFunc.
func (m *MockPassageSearcher) Search(ctx context.Context, query string, topK int) ([]core.ResultItem, error) {
	m.callCount++
	m.queries = append(m.queries, query)

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, topK)
	}
	return []core.ResultItem{}, nil
}

// CallCount returns the number of times Search was called.
func (m *MockPassageSearcher) CallCount() int {
	return m.callCount
}

// Queries returns the recorded queries in call order.
func (m *MockPassageSearcher) Queries() []string {
	return m.queries
}

// Reset clears the call count, recorded queries, and custom functions.
func (m *MockPassageSearcher) Reset() {
	m.callCount = 0
	m.queries = nil
	m.SearchFunc = nil
}

// MockWebSearcher is a test double for retrieval.WebSearcher.
// It allows custom behavior injection via function fields.
type MockWebSearcher struct {
	// SearchFunc is called by Search if set.
	// If nil, returns an empty result list.
	SearchFunc func(ctx context.Context, query string, maxResults int) ([]core.WebResult, error)

	callCount int
	queries   []string
}

// NewMockWebSearcher creates a mock web searcher.
// Note: Returns concrete type to allow test assertions.
func NewMockWebSearcher() *MockWebSearcher {
	return &MockWebSearcher{}
}

// Search records the query and delegates to SearchFunc.
func (m *MockWebSearcher) Search(ctx context.Context, query string, maxResults int) ([]core.WebResult, error) {
	m.callCount++
	m.queries = append(m.queries, query)

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, maxResults)
	}
	return []core.WebResult{}, nil
}

// CallCount returns the number of times Search was called.
func (m *MockWebSearcher) CallCount() int {
	return m.callCount
}

// Queries returns the recorded queries in call order.
func (m *MockWebSearcher) Queries() []string {
	return m.queries
}

// Reset clears the call count, recorded queries, and custom functions.
func (m *MockWebSearcher) Reset() {
	m.callCount = 0
	m.queries = nil
	m.SearchFunc = nil
}
