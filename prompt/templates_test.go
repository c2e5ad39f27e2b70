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


package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecisionPrompt(t *testing.T) {
	templates := DefaultTemplates()

	t.Run("web search enabled", func(t *testing.T) {
		out := templates.DecisionPrompt("question?", "query", 2, 1, 1, "1. [Internal] 25: snippet...", true)
		assert.Contains(t, out, "question?")
		assert.Contains(t, out, "query")
		assert.Contains(t, out, "web_search")
		assert.Contains(t, out, "1. [Internal] 25: snippet...")
	})

	t.Run("web search disabled", func(t *testing.T) {
		out := templates.DecisionPrompt("question?", "query", 2, 0, 1, "", false)
		assert.NotContains(t, out, "web_search")
	})
}

func TestRefinePrompt(t *testing.T) {
	templates := DefaultTemplates()
	out := templates.RefinePrompt("original question", "current query", 2, "25, 113")
	assert.Contains(t, out, "original question")
	assert.Contains(t, out, "current query")
	assert.Contains(t, out, "25, 113")
}

func TestUserPrompt(t *testing.T) {
	templates := DefaultTemplates()
	out := templates.UserPrompt("[Passage 1]\nContent: text", "the question")
	assert.Contains(t, out, "[Passage 1]")
	assert.Contains(t, out, "the question")
	// Context precedes the question.
	assert.Less(t, strings.Index(out, "[Passage 1]"), strings.Index(out, "the question"))
}

func TestTemplateOverrides(t *testing.T) {
	templates := DefaultTemplates(WithSystem("custom system prompt"))
	assert.Equal(t, "custom system prompt", templates.SystemPrompt())

	// Untouched templates keep their defaults.
	assert.NotEmpty(t, templates.RefinePrompt("q", "c", 1, "none yet"))
}
