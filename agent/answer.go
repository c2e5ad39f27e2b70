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
	"fmt"
	"strings"

	"github.com/poiesic/lexquery/ai"
	"github.com/poiesic/lexquery/core"
)

// generateAnswer synthesizes the final answer from everything retrieved.
// Web results are normalized into the same passage shape as internal ones
// before being handed to the model. With no results at all it short-circuits
// to the fixed not-found message without calling the generator.
func (a *Agent) generateAnswer(ctx context.Context, state *agentState, cfg *Config) {
	combined := combineResults(state.searchResults, state.webResults)
	if len(combined) == 0 {
		a.logger.Debug("no results to synthesize from")
		state.setAnswer(notFoundAnswer)
		return
	}

	contextText := buildContext(combined)
	userPrompt := a.templates.UserPrompt(contextText, state.question)

	reply, err := a.generator.Generate(ctx, &ai.GenerateRequest{
		Prompt:       userPrompt,
		SystemPrompt: a.templates.SystemPrompt(),
		Temperature:  cfg.AnswerTemperature,
		MaxTokens:    cfg.AnswerMaxTokens,
	})
	if err != nil {
		a.logger.Error("answer generation failed", "error", err)
		state.setAnswer(fmt.Sprintf("Sorry, an error occurred while generating the answer: %v", err))
		return
	}

	a.logger.Debug("answer generated",
		"passages", len(combined),
		"internal", len(state.searchResults),
		"web", len(state.webResults))
	state.setAnswer(reply)
}

// combineResults tags the accumulated internal results and appends the web
// results converted to the common passage shape. The state slices are not
// modified; the synthesizer works on copies.
func combineResults(internal []core.ResultItem, web []core.WebResult) []core.ResultItem {
	combined := make([]core.ResultItem, 0, len(internal)+len(web))

	for _, item := range internal {
		item.SourceType = core.SourceTypeInternal
		combined = append(combined, item)
	}

	for _, item := range web {
		switch item.Kind {
		case core.WebResultAnswer:
			// Direct engine answers rank as strong evidence.
			combined = append(combined, core.ResultItem{
				Text:       "[Web search summary]\n" + item.Content,
				Metadata:   map[string]string{"source": "web_summary"},
				Score:      1.0,
				SourceType: core.SourceTypeWeb,
			})
		default:
			title := item.Title
			if title == "" {
				title = "N/A"
			}
			combined = append(combined, core.ResultItem{
				Text: fmt.Sprintf("[Web source: %s]\n%s", title, item.Content),
				Metadata: map[string]string{
					"source": "web",
					"url":    item.URL,
					"title":  item.Title,
				},
				Score:      item.Score,
				SourceType: core.SourceTypeWeb,
			})
		}
	}

	return combined
}

// buildContext renders the numbered passage block fed to the answer model.
// Known legal metadata fields are surfaced as labeled lines; everything
// else stays inside the passage text.
func buildContext(items []core.ResultItem) string {
	parts := make([]string, 0, len(items))
	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "[Passage %d]\n", i+1)
		if v := item.Metadata["article_id"]; v != "" {
			fmt.Fprintf(&b, "Article: %s\n", v)
		}
		if v := item.Metadata["article_title"]; v != "" {
			fmt.Fprintf(&b, "Title: %s\n", v)
		}
		if v := item.Metadata["clause_id"]; v != "" {
			fmt.Fprintf(&b, "Clause: %s\n", v)
		}
		fmt.Fprintf(&b, "Content: %s\n", item.Text)
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n")
}
