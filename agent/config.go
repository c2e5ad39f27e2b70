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


package agent

import "github.com/poiesic/lexquery/core"

// Config holds the per-run settings of the agent. It is a plain value:
// Query copies it before applying per-call overrides, so a running query
// never observes configuration changes made elsewhere.
type Config struct {
	// MaxIterations bounds the number of retrieval rounds per query.
	MaxIterations int

	// TopK is the result count requested from each retrieval call.
	TopK int

	// EnableWebSearch allows escalation to web search. Forced off when the
	// agent has no web searcher.
	EnableWebSearch bool

	// WebQueryPrefix is prepended to outgoing web queries to bias results
	// toward the target legal domain.
	WebQueryPrefix string

	// DecisionTemperature is used for decision and refine calls.
	DecisionTemperature float64

	// AnswerTemperature is used for the final generation call. Kept low to
	// favor groundedness over creativity.
	AnswerTemperature float64

	// AnswerMaxTokens bounds the final generation output length.
	AnswerMaxTokens int
}

// DefaultConfig returns the default agent configuration.
func DefaultConfig() Config {
	return Config{
		MaxIterations:       3,
		TopK:                3,
		EnableWebSearch:     true,
		WebQueryPrefix:      "labor law",
		DecisionTemperature: 0.3,
		AnswerTemperature:   0.1,
		AnswerMaxTokens:     2000,
	}
}

// Validate checks the configuration against the accepted request bounds.
func (c *Config) Validate() error {
	return core.ValidateQueryBounds(c.MaxIterations, c.TopK)
}

// QueryOption overrides a setting for a single Query call.
type QueryOption func(*Config)

// WithMaxIterations overrides the retrieval round bound for one query.
func WithMaxIterations(n int) QueryOption {
	return func(c *Config) { c.MaxIterations = n }
}

// WithTopK overrides the per-search result count for one query.
func WithTopK(n int) QueryOption {
	return func(c *Config) { c.TopK = n }
}

// WithWebSearch enables or disables web-search escalation for one query.
func WithWebSearch(enabled bool) QueryOption {
	return func(c *Config) { c.EnableWebSearch = enabled }
}
