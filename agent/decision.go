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

// maxConsecutiveFailures bounds back-to-back failed retrieval calls. Failed
// calls never advance the iteration counter, so without this cap a flaky
// backend could keep the loop spinning indefinitely.
const maxConsecutiveFailures = 2

// Preview bounds for the decision prompt. The model sees at most this many
// result snippets regardless of how much has accumulated.
const (
	previewInternalLimit = 5
	previewWebLimit      = 3
	previewSnippetRunes  = 100
)

// action is the closed set of moves the decision step can select.
type action int

const (
	actionAnswer action = iota
	actionRefine
	actionSearch
	actionWebSearch
)

// specificDataKeywords mark questions that ask for concrete figures or
// current values. Such questions escalate to web search when repeated
// internal retrieval has not produced web evidence, since the corpus may
// lag behind the latest decrees and rates.
var specificDataKeywords = []string{
	"how much", "how many", "amount", "percent", "%", "rate",
	"salary", "wage", "days", "months", "weeks",
	"currently", "current", "latest", "newest", "2024", "2025",
	"exact", "exactly", "specific",
}

func containsSpecificDataQuery(question string) bool {
	lowered := strings.ToLower(question)
	for _, kw := range specificDataKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// decide runs the decision step. It rewrites the three routing flags on the
// state and never returns an error: every failure path degrades to a safe
// flag combination instead.
func (a *Agent) decide(ctx context.Context, state *agentState, cfg *Config) {
	state.needsRefinement = false
	state.useWebSearch = false

	// Hard stops come before any model call.
	if state.iteration >= state.maxIterations {
		a.logger.Debug("iteration budget exhausted", "iteration", state.iteration)
		state.shouldContinue = false
		return
	}
	if state.failures >= maxConsecutiveFailures {
		a.logger.Warn("stopping after repeated retrieval failures", "failures", state.failures)
		state.shouldContinue = false
		return
	}

	// Nothing retrieved yet: the first move is always an internal search.
	if state.iteration == 0 && !state.hasResults() {
		state.shouldContinue = true
		return
	}

	// Questions asking for specific figures escalate to the web without
	// consulting the model, once internal retrieval has had its chance.
	if cfg.EnableWebSearch && state.iteration >= 2 && len(state.webResults) == 0 &&
		containsSpecificDataQuery(state.question) {
		a.logger.Debug("escalating specific-data question to web search", "iteration", state.iteration)
		state.shouldContinue = true
		state.useWebSearch = true
		return
	}

	preview := resultsPreview(state.searchResults, state.webResults)
	decisionPrompt := a.templates.DecisionPrompt(
		state.question, state.query,
		len(state.searchResults), len(state.webResults),
		state.iteration, preview, cfg.EnableWebSearch,
	)

	reply, err := a.generator.Generate(ctx, &ai.GenerateRequest{
		Prompt:      decisionPrompt,
		Temperature: cfg.DecisionTemperature,
	})
	if err != nil {
		// Degrade: answer from what we have, or take one more internal pass.
		a.logger.Warn("decision generation failed", "error", err)
		state.shouldContinue = !state.hasResults()
		return
	}

	act := parseAction(reply, cfg.EnableWebSearch)
	a.logger.Debug("decision", "reply", reply, "iteration", state.iteration)

	switch act {
	case actionRefine:
		state.shouldContinue = true
		state.needsRefinement = true
	case actionWebSearch:
		state.shouldContinue = true
		state.useWebSearch = true
	case actionSearch:
		state.shouldContinue = true
	default:
		state.shouldContinue = false
	}
}

// parseAction maps a model reply onto the closed action set. An exact
// keyword match wins; otherwise a substring scan handles replies where the
// model wrapped the keyword in prose. Anything unrecognized means answer,
// and web actions collapse when web search is disabled.
func parseAction(reply string, webEnabled bool) action {
	cleaned := strings.ToLower(strings.TrimSpace(reply))
	cleaned = strings.Trim(cleaned, `"'.`+" \t\n")

	switch cleaned {
	case "answer":
		return actionAnswer
	case "refine":
		return actionRefine
	case "search":
		return actionSearch
	case "web_search", "web search", "websearch", "web":
		if webEnabled {
			return actionWebSearch
		}
	}

	switch {
	case strings.Contains(cleaned, "refine"):
		return actionRefine
	case webEnabled && strings.Contains(cleaned, "web"):
		return actionWebSearch
	case strings.Contains(cleaned, "search"):
		return actionSearch
	}
	return actionAnswer
}

// resultsPreview renders the bounded snippet list shown to the decision
// model: up to five internal passages followed by up to three web results.
func resultsPreview(internal []core.ResultItem, web []core.WebResult) string {
	var b strings.Builder

	shown := 0
	for _, item := range internal {
		if shown >= previewInternalLimit {
			break
		}
		article := item.Metadata["article_id"]
		if article == "" {
			article = "N/A"
		}
		shown++
		fmt.Fprintf(&b, "%d. [Internal] %s: %s...\n", shown, article, truncateRunes(item.Text, previewSnippetRunes))
	}

	webShown := 0
	for _, item := range web {
		if webShown >= previewWebLimit {
			break
		}
		title := item.Title
		if title == "" {
			title = "N/A"
		}
		webShown++
		fmt.Fprintf(&b, "%d. [Web] %s: %s...\n", shown+webShown, title, truncateRunes(item.Content, previewSnippetRunes))
	}

	return strings.TrimRight(b.String(), "\n")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
