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


// Package prompt supplies the parameterized natural-language templates used
// by the retrieval agent: the next-action decision prompt, the query-refine
// prompt, and the grounded answer-generation prompts. Templates are plain
// configuration data; all control logic lives in the agent.
package prompt

import "fmt"

const defaultDecision = `You are a legal research assistant. Based on the question and the current search results, decide the next action.

Question: %s
Current query: %s
Internal results: %d
Web results: %d
Searches performed: %d

Current search results:
%s

IMPORTANT ANALYSIS:
1. Does the question ask for a SPECIFIC FIGURE (an amount, a percentage, a salary level, a date)?
2. Do the internal results contain that SPECIFIC NUMBER?
3. If the question asks for a specific number but the results only describe the general legal framework, WEB_SEARCH is needed.

Reply with EXACTLY ONE of the following options (answer with a single word):
- "answer" - if the results already contain the SPECIFIC information needed to answer
- "refine" - if the results are off-topic and the query needs rewording
- "search" - if more passages should be retrieved from the internal database%s

Answer with ONE word only: answer, refine, search%s.`

const defaultWebSearchGuidance = `
- "web_search" - if the question asks for a SPECIFIC FIGURE (amount, percentage, date) that the internal results do NOT contain
  EXAMPLE: "what is the region 1 minimum wage" - needs web_search because the statute says "set by region" without the figure
  EXAMPLE: "the LATEST 2024 regulation" - needs web_search to find the newer decree
  EXAMPLE: "the current social insurance contribution rate" - needs web_search for the exact percentage`

const defaultRefine = `You are a legal domain expert. Extract the core LEGAL CONCEPT from the question to search the labor code.

Original question: %s
Current query: %s
Searches performed: %d
Articles already found: %s

Produce a NEW search query that:
1. Focuses on the core legal concept (e.g. "probationary salary", "probation period", "employment contract")
2. Drops specific figures (amounts, durations, personal names)
3. Uses standard legal terminology from the labor code

Examples:
- "Salary 10 million on 2 months probation" -> "probationary salary"
- "I quit my job, do I get an allowance" -> "severance allowance"

Reply with the new query only (2-6 words), NO explanation.`

const defaultSystem = `You are a professional legal assistant specializing in labor law.

MANDATORY RULES (STRICT):
1. ONLY use information from the statute passages provided below
2. NEVER invent regulations, percentages, or figures that are not in the passages
3. NEVER say "as generally regulated" or "typically" unless the passages say so
4. If the information is INSUFFICIENT to fully answer, state clearly: "The retrieved passages do not cover [the specific issue]"
5. ALWAYS cite the exact article and clause numbers when giving information
6. If the question asks for a specific number (%, amount, days) that the passages do not state, say: "The statute does not specify [the issue]"

Answer clearly, precisely, and honestly.`

const defaultUser = `Based STRICTLY and EXCLUSIVELY on the following statute passages, answer the question:

%s

Question: %s

Structure the answer as:
1. Relevant passages (cite the exact article and clause numbers)
2. Analysis and answer based on the passage contents
3. Caveats (if the information is insufficient for a full answer)

Remember: ONLY use information from the passages above, do NOT invent anything.`

// Templates holds the prompt templates consumed by the agent.
// Construct with DefaultTemplates, which populates every field; options
// override a single template without restating the rest.
type Templates struct {
	// Decision is the next-action prompt. Placeholders, in order:
	// question, current query, internal count, web count, iteration,
	// results preview, web-search option block, web-search suffix.
	Decision string

	// WebSearchGuidance is appended to the decision prompt's option list
	// when web search is enabled.
	WebSearchGuidance string

	// Refine is the query-rewrite prompt. Placeholders, in order:
	// question, current query, iteration, articles found.
	Refine string

	// System is the grounding system prompt for answer generation.
	System string

	// User is the answer-generation prompt. Placeholders, in order:
	// context, question.
	User string
}

// Option overrides a single template.
type Option func(*Templates)

// WithDecision overrides the decision template.
func WithDecision(t string) Option { return func(p *Templates) { p.Decision = t } }

// WithWebSearchGuidance overrides the web-search guidance block.
func WithWebSearchGuidance(t string) Option { return func(p *Templates) { p.WebSearchGuidance = t } }

// WithRefine overrides the refine template.
func WithRefine(t string) Option { return func(p *Templates) { p.Refine = t } }

// WithSystem overrides the answer-generation system prompt.
func WithSystem(t string) Option { return func(p *Templates) { p.System = t } }

// WithUser overrides the answer-generation user template.
func WithUser(t string) Option { return func(p *Templates) { p.User = t } }

// DefaultTemplates returns the built-in templates with the provided overrides applied.
func DefaultTemplates(opts ...Option) *Templates {
	p := &Templates{
		Decision:          defaultDecision,
		WebSearchGuidance: defaultWebSearchGuidance,
		Refine:            defaultRefine,
		System:            defaultSystem,
		User:              defaultUser,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DecisionPrompt formats the next-action prompt. The web-search option and
// its suffix are included only when web search is enabled.
func (p *Templates) DecisionPrompt(question, query string, numInternal, numWeb, iteration int, resultsPreview string, enableWebSearch bool) string {
	webOption := ""
	webSuffix := ""
	if enableWebSearch {
		webOption = p.WebSearchGuidance
		webSuffix = ", or web_search"
	}
	return fmt.Sprintf(p.Decision,
		question, query, numInternal, numWeb, iteration, resultsPreview, webOption, webSuffix)
}

// RefinePrompt formats the query-rewrite prompt.
func (p *Templates) RefinePrompt(question, currentQuery string, iteration int, articlesFound string) string {
	return fmt.Sprintf(p.Refine, question, currentQuery, iteration, articlesFound)
}

// SystemPrompt returns the grounding system prompt for answer generation.
func (p *Templates) SystemPrompt() string {
	return p.System
}

// UserPrompt formats the answer-generation prompt from the grounding
// context and the original question.
func (p *Templates) UserPrompt(context, question string) string {
	return fmt.Sprintf(p.User, context, question)
}
