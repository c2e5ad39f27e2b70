package agent

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aimock "github.com/poiesic/lexquery/ai/mock"
	"github.com/poiesic/lexquery/core"
	retrievalmock "github.com/poiesic/lexquery/retrieval/mock"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		webEnabled bool
		want       action
	}{
		{"exact answer", "answer", true, actionAnswer},
		{"exact refine", "refine", true, actionRefine},
		{"exact search", "search", true, actionSearch},
		{"exact web search", "web_search", true, actionWebSearch},
		{"uppercase", "SEARCH", true, actionSearch},
		{"quoted", `"refine"`, true, actionRefine},
		{"trailing period", "answer.", true, actionAnswer},
		{"web variant", "web search", true, actionWebSearch},
		{"wrapped in prose", "I think we should refine the query", true, actionRefine},
		{"prose search", "let's search again", true, actionSearch},
		{"prose web", "try the web for this", true, actionWebSearch},
		{"web when disabled", "web_search", false, actionSearch},
		{"bare web when disabled", "web", false, actionAnswer},
		{"garbage", "42", true, actionAnswer},
		{"empty", "", true, actionAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAction(tt.reply, tt.webEnabled))
		})
	}
}

func TestContainsSpecificDataQuery(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"How much is the regional minimum wage?", true},
		{"How many days of annual leave do employees get?", true},
		{"What is the overtime rate percentage?", true},
		{"What is the current social insurance contribution?", true},
		{"What does the law say about employment contracts?", false},
		{"Can an employer terminate a contract unilaterally?", false},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, containsSpecificDataQuery(tt.question))
		})
	}
}

func TestResultsPreview(t *testing.T) {
	t.Run("caps internal and web counts", func(t *testing.T) {
		internal := make([]core.ResultItem, 8)
		for i := range internal {
			internal[i] = core.ResultItem{
				Text:     fmt.Sprintf("Passage %d.", i+1),
				Metadata: map[string]string{"article_id": fmt.Sprintf("%d", i+1)},
			}
		}
		web := make([]core.WebResult, 5)
		for i := range web {
			web[i] = core.WebResult{Title: fmt.Sprintf("Page %d", i+1), Content: "Body."}
		}

		preview := resultsPreview(internal, web)
		lines := strings.Split(preview, "\n")
		require.Len(t, lines, previewInternalLimit+previewWebLimit)
		assert.Contains(t, lines[0], "[Internal] 1:")
		assert.Contains(t, lines[4], "[Internal] 5:")
		assert.True(t, strings.HasPrefix(lines[5], "6. [Web]"))
		assert.True(t, strings.HasPrefix(lines[7], "8. [Web]"))
	})

	t.Run("truncates long snippets", func(t *testing.T) {
		long := strings.Repeat("x", 300)
		preview := resultsPreview([]core.ResultItem{{Text: long, Metadata: map[string]string{}}}, nil)
		assert.Contains(t, preview, strings.Repeat("x", previewSnippetRunes)+"...")
		assert.NotContains(t, preview, strings.Repeat("x", previewSnippetRunes+1))
	})

	t.Run("missing metadata labeled", func(t *testing.T) {
		preview := resultsPreview(
			[]core.ResultItem{{Text: "No article.", Metadata: map[string]string{}}},
			[]core.WebResult{{Content: "No title."}},
		)
		assert.Contains(t, preview, "[Internal] N/A:")
		assert.Contains(t, preview, "[Web] N/A:")
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, resultsPreview(nil, nil))
	})
}

func TestRouteAfterDecide(t *testing.T) {
	tests := []struct {
		name  string
		state agentState
		want  node
	}{
		{"stop with results", agentState{searchResults: passages("x")}, nodeAnswer},
		{"stop without results", agentState{}, nodeEnd},
		{"refine", agentState{shouldContinue: true, needsRefinement: true}, nodeRefine},
		{"web", agentState{shouldContinue: true, useWebSearch: true}, nodeSearchWeb},
		{"search", agentState{shouldContinue: true}, nodeSearch},
		{
			"stop with only web results",
			agentState{webResults: []core.WebResult{{Content: "w"}}},
			nodeAnswer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routeAfterDecide(&tt.state))
		})
	}
}

func TestRouteAfterSearch(t *testing.T) {
	tests := []struct {
		name  string
		state agentState
		want  node
	}{
		{
			"budget reached with results",
			agentState{iteration: 3, maxIterations: 3, searchResults: passages("x")},
			nodeAnswer,
		},
		{
			"budget reached without internal results",
			agentState{iteration: 3, maxIterations: 3, webResults: []core.WebResult{{Content: "w"}}},
			nodeEnd,
		},
		{
			"no internal results ends",
			agentState{iteration: 1, maxIterations: 3},
			nodeEnd,
		},
		{
			"results continue the loop",
			agentState{iteration: 1, maxIterations: 3, searchResults: passages("x")},
			nodeDecide,
		},
		{
			"failed search goes back to decide",
			agentState{iteration: 0, maxIterations: 3, failures: 1},
			nodeDecide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routeAfterSearch(&tt.state))
		})
	}
}

func TestMergeResultItems(t *testing.T) {
	t.Run("skips duplicates and empties", func(t *testing.T) {
		accumulated := passages("A.", "B.")
		incoming := append(passages("B.", "C."), core.ResultItem{Text: ""})

		merged, added := mergeResultItems(accumulated, incoming)
		assert.Equal(t, 1, added)
		require.Len(t, merged, 3)
		assert.Equal(t, "C.", merged[2].Text)
	})

	t.Run("preserves arrival order", func(t *testing.T) {
		merged, added := mergeResultItems(nil, passages("B.", "A.", "B."))
		assert.Equal(t, 2, added)
		require.Len(t, merged, 2)
		assert.Equal(t, "B.", merged[0].Text)
		assert.Equal(t, "A.", merged[1].Text)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, _ := mergeResultItems(nil, passages("A.", "B."))
		second, added := mergeResultItems(first, passages("A.", "B."))
		assert.Equal(t, 0, added)
		assert.Equal(t, first, second)
	})
}

func TestMergeWebResults(t *testing.T) {
	accumulated := []core.WebResult{{Content: "one"}}
	incoming := []core.WebResult{{Content: "one"}, {Content: "two"}, {Content: ""}}

	merged, added := mergeWebResults(accumulated, incoming)
	assert.Equal(t, 1, added)
	require.Len(t, merged, 2)
	assert.Equal(t, "two", merged[1].Content)
}

func TestCombineResults(t *testing.T) {
	internal := passages("Internal passage.")
	web := []core.WebResult{
		{
			Kind:    core.WebResultArticle,
			Title:   "News article",
			URL:     "https://example.com/a",
			Content: "Web body.",
			Score:   0.7,
		},
		{
			Kind:    core.WebResultAnswer,
			Content: "Direct engine answer.",
		},
		{
			Kind:    core.WebResultArticle,
			Content: "Untitled body.",
		},
	}

	combined := combineResults(internal, web)
	require.Len(t, combined, 4)

	assert.Equal(t, core.SourceTypeInternal, combined[0].SourceType)
	assert.Equal(t, "Internal passage.", combined[0].Text)

	article := combined[1]
	assert.Equal(t, core.SourceTypeWeb, article.SourceType)
	assert.Equal(t, "[Web source: News article]\nWeb body.", article.Text)
	assert.Equal(t, "web", article.Metadata["source"])
	assert.Equal(t, "https://example.com/a", article.Metadata["url"])
	assert.InDelta(t, 0.7, article.Score, 1e-6)

	answer := combined[2]
	assert.Equal(t, "[Web search summary]\nDirect engine answer.", answer.Text)
	assert.Equal(t, "web_summary", answer.Metadata["source"])
	assert.InDelta(t, 1.0, answer.Score, 1e-6)

	untitled := combined[3]
	assert.Equal(t, "[Web source: N/A]\nUntitled body.", untitled.Text)

	// The input slices are left untouched.
	assert.Equal(t, core.SourceType(0), internal[0].SourceType)
}

func TestGenerateAnswerEmptyShortCircuit(t *testing.T) {
	generator := aimock.NewMockGenerator()
	a, err := New(retrievalmock.NewMockPassageSearcher(), generator, WithLogger(quietLogger()))
	require.NoError(t, err)

	cfg := DefaultConfig()
	state := newAgentState("anything", cfg.MaxIterations)
	a.generateAnswer(context.Background(), state, &cfg)

	assert.Equal(t, notFoundAnswer, state.answer)
	assert.True(t, state.answered)
	assert.Equal(t, 0, generator.CallCount())
}

func TestBuildContext(t *testing.T) {
	items := []core.ResultItem{
		{
			Text: "Probation must not exceed 180 days.",
			Metadata: map[string]string{
				"article_id":    "25",
				"article_title": "Probation period",
				"clause_id":     "1",
			},
		},
		{Text: "Plain passage.", Metadata: map[string]string{}},
	}

	out := buildContext(items)
	assert.Contains(t, out, "[Passage 1]\nArticle: 25\nTitle: Probation period\nClause: 1\nContent: Probation must not exceed 180 days.")
	assert.Contains(t, out, "[Passage 2]\nContent: Plain passage.")
}

func TestFoundArticles(t *testing.T) {
	t.Run("no articles yet", func(t *testing.T) {
		state := newAgentState("q", 3)
		assert.Equal(t, "none yet", foundArticles(state))
	})

	t.Run("distinct sorted ids", func(t *testing.T) {
		state := newAgentState("q", 3)
		state.searchResults = []core.ResultItem{
			{Text: "a", Metadata: map[string]string{"article_id": "113"}},
			{Text: "b", Metadata: map[string]string{"article_id": "25"}},
			{Text: "c", Metadata: map[string]string{"article_id": "113"}},
			{Text: "d", Metadata: map[string]string{}},
		}
		assert.Equal(t, "113, 25", foundArticles(state))
	})
}
