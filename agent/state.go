package agent

import "github.com/poiesic/lexquery/core"

// Default answers used on the terminal transitions.
const (
	// notFoundAnswer is returned when the run ends with no results at all.
	notFoundAnswer = "Sorry, I could not find any information related to your question."

	// noAnswerFallback fills the envelope when the machine reaches End
	// without the synthesizer running.
	noAnswerFallback = "Unable to generate an answer."
)

// agentState is the mutable record threaded through one query execution.
// It is created fresh per Query call, owned exclusively by that call, and
// discarded when the call returns.
type agentState struct {
	question string // Original question text; never modified
	query    string // Current search text; may be refined between iterations

	searchResults []core.ResultItem // Accumulated internal results; append-only, deduplicated
	webResults    []core.WebResult  // Accumulated web results; append-only, deduplicated

	answer   string
	answered bool // The answer is set at most once, on the terminal transition

	iteration     int // Completed retrieval rounds; only successful searches advance it
	maxIterations int
	failures      int // Consecutive failed retrieval calls; reset on success

	// Transient decision flags, rewritten by every decision step.
	needsRefinement bool
	shouldContinue  bool
	useWebSearch    bool
}

func newAgentState(question string, maxIterations int) *agentState {
	return &agentState{
		question:       question,
		query:          question,
		searchResults:  []core.ResultItem{},
		webResults:     []core.WebResult{},
		maxIterations:  maxIterations,
		shouldContinue: true,
	}
}

// hasResults reports whether any results of either kind have accumulated.
func (s *agentState) hasResults() bool {
	return len(s.searchResults) > 0 || len(s.webResults) > 0
}

// setAnswer records the final answer. Subsequent calls are ignored.
func (s *agentState) setAnswer(answer string) {
	if s.answered {
		return
	}
	s.answer = answer
	s.answered = true
}

// response builds the envelope returned to the caller. All five fields are
// always populated, including for runs that ended without an answer.
func (s *agentState) response() *core.Response {
	answer := s.answer
	if !s.answered {
		answer = noAnswerFallback
	}
	return &core.Response{
		Answer:        answer,
		SearchResults: s.searchResults,
		WebResults:    s.webResults,
		Iterations:    s.iteration,
		QueryUsed:     s.query,
	}
}
