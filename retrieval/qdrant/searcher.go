package qdrant

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/poiesic/lexquery/core"
	"github.com/poiesic/lexquery/retrieval"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/vectorstores"
	lcqdrant "github.com/tmc/langchaingo/vectorstores/qdrant"
)

// Searcher implements retrieval.PassageSearcher against a Qdrant collection.
// Queries are embedded through an Ollama server and matched against the
// pre-built statute index.
type Searcher struct {
	store          lcqdrant.Store
	scoreThreshold float32
	logger         *slog.Logger
}

var _ retrieval.PassageSearcher = (*Searcher)(nil)

// newSearcher is an internal constructor that returns the concrete type.
func newSearcher(config *Config) (*Searcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := ollama.New(
		ollama.WithServerURL(config.EmbeddingHost),
		ollama.WithModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	qdrantURL, err := url.Parse(config.URL)
	if err != nil {
		return nil, fmt.Errorf("qdrant config: invalid URL: %w", err)
	}

	store, err := lcqdrant.New(
		lcqdrant.WithURL(*qdrantURL),
		lcqdrant.WithCollectionName(config.Collection),
		lcqdrant.WithEmbedder(embedder),
	)
	if err != nil {
		return nil, err
	}

	return &Searcher{
		store:          store,
		scoreThreshold: config.ScoreThreshold,
		logger:         slog.Default().With("component", "qdrant-searcher"),
	}, nil
}

// NewSearcher creates a passage searcher using the provided configuration.
//
// Returns retrieval.PassageSearcher interface to enforce abstraction.
func NewSearcher(config *Config) (retrieval.PassageSearcher, error) {
	return newSearcher(config)
}

// Search embeds the query and returns up to topK similar passages.
func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]core.ResultItem, error) {
	s.logger.Debug("searching passages", "query", query, "topK", topK)

	opts := []vectorstores.Option{}
	if s.scoreThreshold > 0 {
		opts = append(opts, vectorstores.WithScoreThreshold(s.scoreThreshold))
	}

	docs, err := s.store.SimilaritySearch(ctx, query, topK, opts...)
	if err != nil {
		s.logger.Error("similarity search failed", "query", query, "err", err)
		return nil, err
	}

	results := make([]core.ResultItem, 0, len(docs))
	for _, doc := range docs {
		results = append(results, core.ResultItem{
			Text:     doc.PageContent,
			Metadata: stringifyMetadata(doc.Metadata),
			Score:    doc.Score,
		})
	}

	s.logger.Debug("passage search complete", "hits", len(results))
	return results, nil
}

// stringifyMetadata flattens the store's metadata payload into the string
// map carried on ResultItem. Missing or nil values default to empty per
// the malformed-data policy.
func stringifyMetadata(metadata map[string]any) map[string]string {
	if len(metadata) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(metadata))
	for k, v := range metadata {
		if v == nil {
			out[k] = ""
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}
