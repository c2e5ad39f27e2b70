package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SourceType identifies where a result item came from.
type SourceType int

const (
	// SourceTypeInternal marks results retrieved from the indexed statute store.
	SourceTypeInternal SourceType = iota + 1
	// SourceTypeWeb marks results retrieved from web search.
	SourceTypeWeb
)

// ResultItem is a single retrieved passage used to ground answer generation.
type ResultItem struct {
	Text       string
	Metadata   map[string]string // Passage metadata (e.g. "article_id", "article_title", "clause_id")
	Score      float32           // Relevance score; 0 when the backend provides none
	SourceType SourceType
}

// WebResultKind distinguishes the two shapes a web search provider returns.
type WebResultKind int

const (
	// WebResultArticle is an ordinary web hit with title, URL and snippet.
	WebResultArticle WebResultKind = iota + 1
	// WebResultAnswer is a provider-generated summary without a source page.
	WebResultAnswer
)

// WebResult represents a single web search hit.
type WebResult struct {
	Kind    WebResultKind
	Title   string
	URL     string
	Content string
	Score   float32
	Engine  string // Engine that produced the hit, as reported by the provider
}

// Response is the envelope returned by a query execution.
// All five fields are always populated, including on degraded runs.
type Response struct {
	Answer        string
	SearchResults []ResultItem
	WebResults    []WebResult
	Iterations    int
	QueryUsed     string
}
