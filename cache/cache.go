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


// Package cache provides a BadgerDB-backed response cache. Entries are
// keyed by question and query settings and expire after a configurable TTL,
// so repeated questions skip the full retrieval loop while stale answers
// age out on their own.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lexquery/core"
)

const defaultTTL = time.Hour

// Cache stores query responses in BadgerDB with per-entry expiry.
type Cache struct {
	db     *badger.DB
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures a Cache during construction.
type Option func(*Cache)

// WithTTL sets the entry lifetime. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithLogger sets the logger used by the cache and the underlying store.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// Open opens a response cache at the given directory, creating it if
// necessary.
func Open(filePath string, opts ...Option) (*Cache, error) {
	return open(filePath, false, opts...)
}

// OpenInMemory opens an ephemeral cache for testing.
func OpenInMemory(opts ...Option) (*Cache, error) {
	return open("", true, opts...)
}

func open(filePath string, inMemory bool, opts ...Option) (*Cache, error) {
	c := &Cache{
		ttl:    defaultTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "cache")

	db, err := openDB(filePath, inMemory, c.logger)
	if err != nil {
		return nil, err
	}
	c.db = db
	return c, nil
}

// Get returns the cached response for the key, or ErrNotFound. Expired
// entries behave as missing.
func (c *Cache) Get(ctx context.Context, key core.ID) (*core.Response, error) {
	if c.db.IsClosed() {
		return nil, ErrClosed
	}

	var response *core.Response
	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(responseKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			response, err = unmarshalResponse(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c.logger.Debug("cache hit", "key", key)
	return response, nil
}

// Put stores a response under the key, replacing any existing entry.
func (c *Cache) Put(ctx context.Context, key core.ID, response *core.Response) error {
	if c.db.IsClosed() {
		return ErrClosed
	}
	if response == nil {
		return core.ErrEmptyContent
	}

	encoded := marshalResponse(response)
	return c.db.Update(func(tx *badger.Txn) error {
		entry := badger.NewEntry(responseKey(key), encoded)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return tx.SetEntry(entry)
	})
}

// Delete removes the entry for the key. Missing keys are not an error.
func (c *Cache) Delete(ctx context.Context, key core.ID) error {
	if c.db.IsClosed() {
		return ErrClosed
	}
	return c.db.Update(func(tx *badger.Txn) error {
		return tx.Delete(responseKey(key))
	})
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	if c.db.IsClosed() {
		return nil
	}
	return c.db.Close()
}
