package retrieval

import (
	"context"

	"github.com/poiesic/lexquery/core"
)

// PassageSearcher queries the internal statute index for passages similar
// to a query. Implementations must be thread-safe for concurrent use.
type PassageSearcher interface {
	// Search returns up to topK passages ranked by similarity (highest
	// first). An empty slice is a valid result for an unproductive query.
	Search(ctx context.Context, query string, topK int) ([]core.ResultItem, error)
}

// WebSearcher queries a web search provider.
// Implementations must be thread-safe for concurrent use.
type WebSearcher interface {
	// Search returns up to maxResults web hits for the query.
	// Provider-generated summaries are returned as WebResultAnswer items.
	Search(ctx context.Context, query string, maxResults int) ([]core.WebResult, error)
}
