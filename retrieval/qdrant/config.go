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


package qdrant

import (
	"errors"
	"strings"
)

// Config holds configuration for the Qdrant-backed passage searcher.
type Config struct {
	// URL is the base URL of the Qdrant server.
	// Example: "http://localhost:6333"
	URL string

	// Collection is the Qdrant collection holding the indexed passages.
	Collection string

	// EmbeddingHost is the base URL of the Ollama server used to embed queries.
	EmbeddingHost string

	// EmbeddingModel is the model identifier used for query embeddings.
	EmbeddingModel string

	// ScoreThreshold filters out matches below this similarity score.
	// 0 disables the threshold.
	ScoreThreshold float32
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithURL sets the Qdrant server URL.
func WithURL(url string) ConfigOption {
	return func(c *Config) { c.URL = url }
}

// WithCollection sets the collection name.
func WithCollection(collection string) ConfigOption {
	return func(c *Config) { c.Collection = collection }
}

// WithEmbedding sets the embedding service host and model.
func WithEmbedding(host, model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.EmbeddingModel = model
	}
}

// WithScoreThreshold sets the minimum similarity score for matches.
func WithScoreThreshold(threshold float32) ConfigOption {
	return func(c *Config) { c.ScoreThreshold = threshold }
}

// DefaultConfig returns a Config with sensible defaults for local services.
func DefaultConfig() *Config {
	return &Config{
		URL:            "http://localhost:6333",
		Collection:     "legal_documents",
		EmbeddingHost:  "http://127.0.0.1:11434",
		EmbeddingModel: "embeddinggemma",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize strips trailing slashes from host URLs.
func (c *Config) Normalize() {
	c.URL = strings.TrimSuffix(c.URL, "/")
	c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.URL == "" {
		return errors.New("qdrant config: URL is required")
	}
	if c.Collection == "" {
		return errors.New("qdrant config: Collection is required")
	}
	if c.EmbeddingHost == "" {
		return errors.New("qdrant config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("qdrant config: EmbeddingModel is required")
	}
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 1 {
		return errors.New("qdrant config: ScoreThreshold must be between 0 and 1")
	}
	return nil
}
