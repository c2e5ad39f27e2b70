package agent

import "context"

// node identifies a step in the query state machine.
type node int

const (
	nodeDecide node = iota
	nodeRefine
	nodeSearch
	nodeSearchWeb
	nodeAnswer
	nodeEnd
)

func (n node) String() string {
	switch n {
	case nodeDecide:
		return "decide"
	case nodeRefine:
		return "refine"
	case nodeSearch:
		return "search"
	case nodeSearchWeb:
		return "search_web"
	case nodeAnswer:
		return "answer"
	case nodeEnd:
		return "end"
	}
	return "unknown"
}

// run drives the state machine from the decision step to End. Each loop
// body executes exactly one node and computes the next from the state.
// Transitions:
//
//	decide     -> refine | search | search_web | answer | end
//	refine     -> search
//	search     -> decide | answer | end
//	search_web -> decide | answer | end
//	answer     -> end
func (a *Agent) run(ctx context.Context, state *agentState, cfg *Config) {
	current := nodeDecide
	for current != nodeEnd {
		a.logger.Debug("step", "node", current, "iteration", state.iteration)
		switch current {
		case nodeDecide:
			a.decide(ctx, state, cfg)
			current = routeAfterDecide(state)
		case nodeRefine:
			a.refineQuery(ctx, state, cfg)
			current = nodeSearch
		case nodeSearch:
			a.searchInternal(ctx, state, cfg)
			current = routeAfterSearch(state)
		case nodeSearchWeb:
			a.searchWeb(ctx, state, cfg)
			current = routeAfterSearch(state)
		case nodeAnswer:
			a.generateAnswer(ctx, state, cfg)
			current = nodeEnd
		}
	}
}

// routeAfterDecide picks the next node from the flags the decision step
// set. Stopping with results in hand goes through synthesis; stopping with
// nothing ends the run immediately.
func routeAfterDecide(state *agentState) node {
	if !state.shouldContinue {
		if state.hasResults() {
			return nodeAnswer
		}
		return nodeEnd
	}
	if state.needsRefinement {
		return nodeRefine
	}
	if state.useWebSearch {
		return nodeSearchWeb
	}
	return nodeSearch
}

// routeAfterSearch is shared by both search nodes. It checks the iteration
// budget and then inspects the internal result set only: web results alone
// do not keep the loop running, but they do feed synthesis once the budget
// forces an answer.
func routeAfterSearch(state *agentState) node {
	if state.iteration >= state.maxIterations {
		if len(state.searchResults) > 0 {
			return nodeAnswer
		}
		return nodeEnd
	}
	if len(state.searchResults) == 0 && state.failures == 0 {
		return nodeEnd
	}
	return nodeDecide
}
