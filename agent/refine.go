package agent

import (
	"context"
	"sort"
	"strings"

	"github.com/poiesic/lexquery/ai"
)

// refineQuery asks the model for a tighter search query. The current query
// survives any failure: a generation error or an empty reply leaves the
// state untouched so the next search still has something to work with.
func (a *Agent) refineQuery(ctx context.Context, state *agentState, cfg *Config) {
	articlesFound := foundArticles(state)

	refinePrompt := a.templates.RefinePrompt(state.question, state.query, state.iteration, articlesFound)

	reply, err := a.generator.Generate(ctx, &ai.GenerateRequest{
		Prompt:      refinePrompt,
		Temperature: cfg.DecisionTemperature,
	})
	if err != nil {
		a.logger.Warn("query refinement failed, keeping current query", "error", err, "query", state.query)
		return
	}

	refined := strings.TrimSpace(reply)
	refined = strings.Trim(refined, `"'`)
	refined = strings.TrimSpace(refined)
	if refined == "" {
		a.logger.Debug("refinement produced empty query, keeping current query", "query", state.query)
		return
	}

	a.logger.Debug("query refined", "from", state.query, "to", refined)
	state.query = refined
}

// foundArticles summarizes which articles retrieval has already surfaced,
// so the refine prompt can steer the model away from repeats.
func foundArticles(state *agentState) string {
	seen := make(map[string]struct{})
	for _, item := range state.searchResults {
		if id := item.Metadata["article_id"]; id != "" {
			seen[id] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return "none yet"
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ", ")
}
