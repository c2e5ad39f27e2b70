// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
)

// Request bounds accepted by the query entry point.
const (
	MinIterations = 1
	MaxIterations = 10
	MinTopK       = 1
	MaxTopK       = 20
)

// ValidateQuestion validates the question text for a query execution.
//
// Validation rules:
//   - Question must contain at least one non-whitespace character
func ValidateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrEmptyQuestion
	}
	return nil
}

// ValidateQueryBounds validates per-query iteration and result-count settings.
func ValidateQueryBounds(maxIterations, topK int) error {
	if maxIterations < MinIterations || maxIterations > MaxIterations {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxIterations, maxIterations)
	}
	if topK < MinTopK || topK > MaxTopK {
		return fmt.Errorf("%w: got %d", ErrInvalidTopK, topK)
	}
	return nil
}

// ValidateSourceType validates that a SourceType has a valid value.
func ValidateSourceType(st SourceType) error {
	if st != SourceTypeInternal && st != SourceTypeWeb {
		return fmt.Errorf("%w: value %d", ErrInvalidSourceType, st)
	}
	return nil
}

// ValidateWebResult validates a WebResult according to domain rules.
//
// Validation rules:
//   - Kind must be article or answer
//   - Content must not be empty
//
// NOT validated (tolerated as empty per the malformed-data policy):
//   - Title, URL, Engine
//   - Score (0 is a valid "no score" value)
func ValidateWebResult(result *WebResult) error {
	if result == nil {
		return fmt.Errorf("%w: result is nil", ErrInvalidWebResultKind)
	}
	if result.Kind != WebResultArticle && result.Kind != WebResultAnswer {
		return fmt.Errorf("%w: value %d", ErrInvalidWebResultKind, result.Kind)
	}
	if result.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
