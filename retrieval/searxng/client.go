package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poiesic/lexquery/core"
	"github.com/poiesic/lexquery/retrieval"
)

const (
	defaultLanguage   = "en"
	defaultCategories = "general"
	defaultTimeout    = 30 * time.Second
	userAgent         = "lexquery/1.0"
)

// Client implements retrieval.WebSearcher against a self-hosted SearXNG
// instance. Requests use POST because many SearXNG deployments block GET
// for the JSON API.
type Client struct {
	baseURL    string
	language   string
	categories string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ retrieval.WebSearcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithLanguage sets the search language. Default is "en".
func WithLanguage(language string) Option {
	return func(c *Client) { c.language = language }
}

// WithCategories sets the search categories. Default is "general".
func WithCategories(categories string) Option {
	return func(c *Client) { c.categories = categories }
}

// WithHTTPClient sets a custom HTTP client.
// Default uses a 30 second timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a SearXNG client for the given base URL.
// Returns the concrete type: callers that only need searching should hold
// it as a retrieval.WebSearcher; Health is additionally available for
// operational checks.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	c := &Client{
		baseURL:    baseURL,
		language:   defaultLanguage,
		categories: defaultCategories,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default().With("component", "searxng-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// searchResponse mirrors the SearXNG JSON API payload. Unknown fields are
// ignored; missing fields default to empty.
type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
		Engine  string `json:"engine"`
	} `json:"results"`
	Answers []string `json:"answers"`
}

// Search runs one web search and returns up to maxResults hits.
// Ordinary hits carry a position-derived score (1.0, 0.9, 0.8, ... with a
// 0.1 floor) because SearXNG does not report scores; provider answers are
// returned as WebResultAnswer items.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]core.WebResult, error) {
	c.logger.Debug("searching web", "query", query, "maxResults", maxResults)

	form := url.Values{}
	form.Set("q", query)
	form.Set("format", "json")
	form.Set("language", c.language)
	form.Set("categories", c.categories)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/search", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("web search request failed", "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("web search returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrSearchFailed, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("failed to decode web search response", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	results := make([]core.WebResult, 0, maxResults)
	for _, answer := range payload.Answers {
		if answer == "" {
			continue
		}
		results = append(results, core.WebResult{
			Kind:    core.WebResultAnswer,
			Content: answer,
			Score:   1.0,
		})
	}

	for _, item := range payload.Results {
		if len(results) >= maxResults {
			break
		}
		position := len(results) + 1
		score := 1.0 - float32(position)*0.1
		if score < 0.1 {
			score = 0.1
		}
		results = append(results, core.WebResult{
			Kind:    core.WebResultArticle,
			Title:   item.Title,
			URL:     item.URL,
			Content: item.Content,
			Score:   score,
			Engine:  item.Engine,
		})
	}

	c.logger.Debug("web search complete", "hits", len(results))
	return results, nil
}

// Health checks that the SearXNG instance responds on its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}
