package agent

import (
	"context"

	"github.com/poiesic/lexquery/core"
)

// searchInternal runs one internal retrieval round and merges the results
// into the accumulated set. Only a successful call advances the iteration
// counter; failures bump the consecutive-failure count instead.
func (a *Agent) searchInternal(ctx context.Context, state *agentState, cfg *Config) {
	results, err := a.searcher.Search(ctx, state.query, cfg.TopK)
	if err != nil {
		a.logger.Warn("internal search failed", "error", err, "query", state.query)
		state.failures++
		return
	}
	state.failures = 0

	var added int
	state.searchResults, added = mergeResultItems(state.searchResults, results)
	state.iteration++

	a.logger.Debug("internal search complete",
		"query", state.query,
		"returned", len(results),
		"added", added,
		"total", len(state.searchResults),
		"iteration", state.iteration)
}

// searchWeb runs one web retrieval round. The outgoing query carries the
// configured domain prefix so general-purpose engines stay on topic. When
// web search is unavailable the step is a no-op and the iteration counter
// does not move.
func (a *Agent) searchWeb(ctx context.Context, state *agentState, cfg *Config) {
	if a.webSearcher == nil || !cfg.EnableWebSearch {
		a.logger.Debug("web search requested but unavailable, skipping")
		return
	}

	query := state.query
	if cfg.WebQueryPrefix != "" {
		query = cfg.WebQueryPrefix + " " + query
	}

	results, err := a.webSearcher.Search(ctx, query, cfg.TopK)
	if err != nil {
		a.logger.Warn("web search failed", "error", err, "query", query)
		state.failures++
		return
	}
	state.failures = 0

	var added int
	state.webResults, added = mergeWebResults(state.webResults, results)
	state.iteration++

	a.logger.Debug("web search complete",
		"query", query,
		"returned", len(results),
		"added", added,
		"total", len(state.webResults),
		"iteration", state.iteration)
}

// mergeResultItems appends incoming items that are not already present,
// comparing by exact text. Accumulated items are never reordered or
// rescored. Returns the merged slice and the number of items added.
func mergeResultItems(accumulated, incoming []core.ResultItem) ([]core.ResultItem, int) {
	seen := make(map[string]struct{}, len(accumulated))
	for _, item := range accumulated {
		seen[item.Text] = struct{}{}
	}

	added := 0
	for _, item := range incoming {
		if item.Text == "" {
			continue
		}
		if _, dup := seen[item.Text]; dup {
			continue
		}
		seen[item.Text] = struct{}{}
		accumulated = append(accumulated, item)
		added++
	}
	return accumulated, added
}

// mergeWebResults is the web-side counterpart of mergeResultItems,
// deduplicating on the result content.
func mergeWebResults(accumulated, incoming []core.WebResult) ([]core.WebResult, int) {
	seen := make(map[string]struct{}, len(accumulated))
	for _, item := range accumulated {
		seen[item.Content] = struct{}{}
	}

	added := 0
	for _, item := range incoming {
		if item.Content == "" {
			continue
		}
		if _, dup := seen[item.Content]; dup {
			continue
		}
		seen[item.Content] = struct{}{}
		accumulated = append(accumulated, item)
		added++
	}
	return accumulated, added
}
