package ai

import "context"

// GenerateRequest describes a single text-generation call.
type GenerateRequest struct {
	// Prompt is the user-role prompt text.
	Prompt string

	// SystemPrompt is prepended as the system message when non-empty.
	SystemPrompt string

	// Temperature controls output randomness (0.0 - 1.0).
	// Lower values favor determinism and groundedness.
	Temperature float64

	// MaxTokens bounds the generated output length.
	MaxTokens int
}

// Generator produces natural-language text from prompts.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate runs one synchronous generation call and returns the
	// produced text with surrounding whitespace trimmed.
	// Returns an error if the generation backend is unreachable or errors.
	Generate(ctx context.Context, req *GenerateRequest) (string, error)
}
