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

import (
	"context"
	"log/slog"

	"github.com/poiesic/lexquery/ai"
	"github.com/poiesic/lexquery/core"
	"github.com/poiesic/lexquery/prompt"
	"github.com/poiesic/lexquery/retrieval"
)

// Agent runs the iterative retrieve-decide-answer loop over an internal
// passage store, an optional web searcher, and a text generator. An Agent
// is immutable after construction and safe for concurrent use; all per-query
// state lives on the call stack.
type Agent struct {
	searcher    retrieval.PassageSearcher
	webSearcher retrieval.WebSearcher
	generator   ai.Generator
	templates   *prompt.Templates
	config      Config
	logger      *slog.Logger
}

// Option configures an Agent during construction.
type Option func(*Agent)

// WithWebSearcher attaches a web searcher. Without one, web search is
// disabled regardless of configuration.
func WithWebSearcher(ws retrieval.WebSearcher) Option {
	return func(a *Agent) { a.webSearcher = ws }
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(a *Agent) { a.config = cfg }
}

// WithTemplates replaces the default prompt templates.
func WithTemplates(t *prompt.Templates) Option {
	return func(a *Agent) { a.templates = t }
}

// WithLogger sets the logger used by the agent.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) { a.logger = logger }
}

// New creates an Agent over the given passage searcher and generator.
func New(searcher retrieval.PassageSearcher, generator ai.Generator, opts ...Option) (*Agent, error) {
	if searcher == nil {
		return nil, ErrPassageSearcherRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	a := &Agent{
		searcher:  searcher,
		generator: generator,
		templates: prompt.DefaultTemplates(),
		config:    DefaultConfig(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("component", "agent")

	if err := a.config.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Query answers a question by running the decision loop to completion.
// Per-call options override the agent configuration for this query only.
// The returned envelope is always fully populated; retrieval and generation
// failures degrade the answer rather than surfacing as errors. An error is
// returned only for invalid input.
func (a *Agent) Query(ctx context.Context, question string, opts ...QueryOption) (*core.Response, error) {
	if err := core.ValidateQuestion(question); err != nil {
		return nil, err
	}

	// Snapshot the configuration so concurrent queries and option overrides
	// cannot interfere mid-run.
	cfg := a.config
	for _, opt := range opts {
		opt(&cfg)
	}
	if a.webSearcher == nil {
		cfg.EnableWebSearch = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a.logger.Info("query started",
		"max_iterations", cfg.MaxIterations,
		"top_k", cfg.TopK,
		"web_search", cfg.EnableWebSearch)

	state := newAgentState(question, cfg.MaxIterations)
	a.run(ctx, state, &cfg)

	a.logger.Info("query finished",
		"iterations", state.iteration,
		"internal_results", len(state.searchResults),
		"web_results", len(state.webResults))

	return state.response(), nil
}
