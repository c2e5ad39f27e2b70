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
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lexquery/agent"
	aictx "github.com/poiesic/lexquery/ai"
	aimock "github.com/poiesic/lexquery/ai/mock"
	"github.com/poiesic/lexquery/cache"
	"github.com/poiesic/lexquery/core"
	retrievalmock "github.com/poiesic/lexquery/retrieval/mock"
)

// newTestEngine wires an Engine over mock backends and an in-memory cache.
func newTestEngine(t *testing.T) (*Engine, *aimock.MockGenerator) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	searcher := retrievalmock.NewMockPassageSearcher()
	searcher.SearchFunc = func(ctx context.Context, query string, topK int) ([]core.ResultItem, error) {
		return []core.ResultItem{{
			Text:     "Article 25 limits probation to 180 days.",
			Metadata: map[string]string{"article_id": "25"},
			Score:    0.9,
		}}, nil
	}

	generator := aimock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, req *aictx.GenerateRequest) (string, error) {
		if req.SystemPrompt != "" {
			return "Probation is capped at 180 days.", nil
		}
		return "answer", nil
	}

	loop, err := agent.New(searcher, generator,
		agent.WithLogger(logger))
	require.NoError(t, err)

	responseCache, err := cache.OpenInMemory(cache.WithLogger(logger))
	require.NoError(t, err)

	e := &Engine{
		searcher:    searcher,
		generator:   generator,
		agent:       loop,
		cache:       responseCache,
		agentConfig: agent.DefaultConfig(),
		logger:      logger,
	}
	t.Cleanup(func() { e.Close() })
	return e, generator
}

func TestEngineQueryCaching(t *testing.T) {
	e, generator := newTestEngine(t)
	ctx := context.Background()
	question := "What is the probation limit?"

	first, err := e.Query(ctx, question)
	require.NoError(t, err)
	assert.Equal(t, "Probation is capped at 180 days.", first.Answer)
	callsAfterFirst := generator.CallCount()

	// Identical question and settings come straight from the cache.
	second, err := e.Query(ctx, question)
	require.NoError(t, err)
	assert.Equal(t, first.Answer, second.Answer)
	assert.Equal(t, first.Iterations, second.Iterations)
	assert.Equal(t, first.QueryUsed, second.QueryUsed)
	require.Len(t, second.SearchResults, len(first.SearchResults))
	assert.Equal(t, callsAfterFirst, generator.CallCount())

	// A different setting is a different cache entry.
	_, err = e.Query(ctx, question, agent.WithTopK(5))
	require.NoError(t, err)
	assert.Greater(t, generator.CallCount(), callsAfterFirst)
}

func TestEngineQueryWithoutCache(t *testing.T) {
	e, generator := newTestEngine(t)
	e.cache = nil
	ctx := context.Background()

	first, err := e.Query(ctx, "What is the probation limit?")
	require.NoError(t, err)
	callsAfterFirst := generator.CallCount()

	second, err := e.Query(ctx, "What is the probation limit?")
	require.NoError(t, err)
	assert.Equal(t, first.Answer, second.Answer)
	// No cache: the loop runs again.
	assert.Greater(t, generator.CallCount(), callsAfterFirst)
}

func TestEngineWebSearchHelpers(t *testing.T) {
	e, _ := newTestEngine(t)
	assert.False(t, e.WebSearchAvailable())
	assert.NoError(t, e.WebSearchHealth(context.Background()))
}
