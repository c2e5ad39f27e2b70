// Package mock provides a test double implementation of the ai.Generator
// interface for use in unit tests without an LLM backend.
//
//	gen := mock.NewMockGenerator()
//	gen.GenerateFunc = func(ctx context.Context, req *ai.GenerateRequest) (string, error) {
//	    return "answer", nil
//	}
//	count := gen.CallCount()
package mock
