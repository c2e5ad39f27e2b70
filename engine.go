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


package lexquery

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/lexquery/agent"
	"github.com/poiesic/lexquery/ai"
	"github.com/poiesic/lexquery/ai/ollama"
	"github.com/poiesic/lexquery/cache"
	"github.com/poiesic/lexquery/core"
	"github.com/poiesic/lexquery/retrieval"
	"github.com/poiesic/lexquery/retrieval/qdrant"
	"github.com/poiesic/lexquery/retrieval/searxng"
)

// Engine assembles the retrieval backends, the generator, the agent loop,
// and the optional response cache behind a single entry point.
type Engine struct {
	searcher    retrieval.PassageSearcher
	webSearcher *searxng.Client
	generator   ai.Generator
	agent       *agent.Agent
	cache       *cache.Cache
	agentConfig agent.Config
	logger      *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig        *ai.Config
	retrievalConfig *qdrant.Config
	agentConfig     agent.Config
	searxngURL      string
	cachePath       string
	cacheInMemory   bool
	logger          *slog.Logger
}

// WithAIConfig sets the generation backend configuration.
func WithAIConfig(cfg *ai.Config) EngineOption {
	return func(o *engineOptions) { o.aiConfig = cfg }
}

// WithRetrievalConfig sets the vector store configuration.
func WithRetrievalConfig(cfg *qdrant.Config) EngineOption {
	return func(o *engineOptions) { o.retrievalConfig = cfg }
}

// WithAgentConfig sets the agent loop configuration.
func WithAgentConfig(cfg agent.Config) EngineOption {
	return func(o *engineOptions) { o.agentConfig = cfg }
}

// WithWebSearch enables web search against a SearXNG instance.
func WithWebSearch(baseURL string) EngineOption {
	return func(o *engineOptions) { o.searxngURL = baseURL }
}

// WithCache enables the response cache at the given directory.
func WithCache(path string) EngineOption {
	return func(o *engineOptions) { o.cachePath = path }
}

// WithMemoryCache enables an ephemeral response cache.
func WithMemoryCache() EngineOption {
	return func(o *engineOptions) { o.cacheInMemory = true }
}

// WithLogger sets the logger shared by all components.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) { o.logger = logger }
}

// NewEngine builds an Engine from the options, wiring defaults for every
// component that is not configured explicitly.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig:        ai.DefaultConfig(),
		retrievalConfig: qdrant.DefaultConfig(),
		agentConfig:     agent.DefaultConfig(),
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	searcher, err := qdrant.NewSearcher(options.retrievalConfig)
	if err != nil {
		return nil, err
	}

	generator, err := ollama.NewGenerator(options.aiConfig)
	if err != nil {
		return nil, err
	}

	var webSearcher *searxng.Client
	if options.searxngURL != "" {
		webSearcher, err = searxng.NewClient(options.searxngURL, searxng.WithLogger(options.logger))
		if err != nil {
			return nil, err
		}
	}

	var responseCache *cache.Cache
	switch {
	case options.cacheInMemory:
		responseCache, err = cache.OpenInMemory(cache.WithLogger(options.logger))
	case options.cachePath != "":
		responseCache, err = cache.Open(options.cachePath, cache.WithLogger(options.logger))
	}
	if err != nil {
		return nil, err
	}

	agentOpts := []agent.Option{
		agent.WithConfig(options.agentConfig),
		agent.WithLogger(options.logger),
	}
	if webSearcher != nil {
		agentOpts = append(agentOpts, agent.WithWebSearcher(webSearcher))
	}
	loop, err := agent.New(searcher, generator, agentOpts...)
	if err != nil {
		if responseCache != nil {
			responseCache.Close()
		}
		return nil, err
	}

	return &Engine{
		searcher:    searcher,
		webSearcher: webSearcher,
		generator:   generator,
		agent:       loop,
		cache:       responseCache,
		agentConfig: options.agentConfig,
		logger:      options.logger.With("component", "engine"),
	}, nil
}

// Query answers a question, consulting the response cache when one is
// configured. Per-call options apply to both the cache key and the agent
// run, so differently configured queries never share cache entries.
func (e *Engine) Query(ctx context.Context, question string, opts ...agent.QueryOption) (*core.Response, error) {
	if e.cache == nil {
		return e.agent.Query(ctx, question, opts...)
	}

	cfg := e.agentConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	webSearch := cfg.EnableWebSearch && e.webSearcher != nil
	key := cache.Key(question, cfg.MaxIterations, cfg.TopK, webSearch)

	if cached, err := e.cache.Get(ctx, key); err == nil {
		e.logger.Debug("serving cached response", "key", key)
		return cached, nil
	} else if !errors.Is(err, cache.ErrNotFound) {
		e.logger.Warn("cache lookup failed", "error", err)
	}

	response, err := e.agent.Query(ctx, question, opts...)
	if err != nil {
		return nil, err
	}

	if err := e.cache.Put(ctx, key, response); err != nil {
		e.logger.Warn("cache store failed", "error", err)
	}
	return response, nil
}

// WebSearchAvailable reports whether a web searcher is configured.
func (e *Engine) WebSearchAvailable() bool {
	return e.webSearcher != nil
}

// WebSearchHealth pings the configured SearXNG instance. Returns nil when
// web search is not configured.
func (e *Engine) WebSearchHealth(ctx context.Context) error {
	if e.webSearcher == nil {
		return nil
	}
	return e.webSearcher.Health(ctx)
}

// Close releases the engine resources.
func (e *Engine) Close() error {
	if e.cache != nil {
		if err := e.cache.Close(); err != nil {
			e.logger.Error("error closing response cache", "err", err)
			return err
		}
	}
	return nil
}
