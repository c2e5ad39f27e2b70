package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseRoundTrip(t *testing.T) {
	original := Response{
		Answer: "Probation may not exceed 180 days.",
		SearchResults: []ResultItem{
			{
				Text:       "Article 25 limits probation to 180 days.",
				Metadata:   map[string]string{"article_id": "25", "clause_id": "1"},
				Score:      0.91,
				SourceType: SourceTypeInternal,
			},
		},
		WebResults: []WebResult{
			{
				Kind:    WebResultArticle,
				Title:   "Labor code update",
				URL:     "https://example.com/update",
				Content: "The probation rules were clarified.",
				Score:   0.4,
				Engine:  "duckduckgo",
			},
		},
		Iterations: 2,
		QueryUsed:  "probation period limit",
	}

	bs := make([]byte, ResponseMUS.Size(original))
	n := ResponseMUS.Marshal(original, bs)
	require.Equal(t, len(bs), n)

	decoded, n, err := ResponseMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
	assert.Equal(t, original, decoded)
}

func TestResponseSkip(t *testing.T) {
	response := Response{Answer: "short", SearchResults: []ResultItem{}, WebResults: []WebResult{}}
	bs := make([]byte, ResponseMUS.Size(response))
	ResponseMUS.Marshal(response, bs)

	n, err := ResponseMUS.Skip(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
}
