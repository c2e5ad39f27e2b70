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


package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lexquery/core"
)

func newTestCache(t *testing.T, opts ...Option) *Cache {
	t.Helper()
	c, err := OpenInMemory(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func sampleResponse() *core.Response {
	return &core.Response{
		Answer: "Probation may not exceed 180 days.",
		SearchResults: []core.ResultItem{
			{
				Text:       "Article 25 limits probation.",
				Metadata:   map[string]string{"article_id": "25"},
				Score:      0.9,
				SourceType: core.SourceTypeInternal,
			},
		},
		WebResults: []core.WebResult{},
		Iterations: 2,
		QueryUsed:  "probation period",
	}
}

func TestCachePutGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	key := Key("What is the probation limit?", 3, 3, false)
	require.NoError(t, c.Put(ctx, key, sampleResponse()))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, sampleResponse(), got)
}

func TestCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), Key("never stored", 3, 3, false))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCacheKeyIncludesSettings(t *testing.T) {
	question := "What is the probation limit?"

	base := Key(question, 3, 3, false)
	assert.Equal(t, base, Key(question, 3, 3, false))
	assert.NotEqual(t, base, Key(question, 5, 3, false))
	assert.NotEqual(t, base, Key(question, 3, 5, false))
	assert.NotEqual(t, base, Key(question, 3, 3, true))
	assert.NotEqual(t, base, Key("another question", 3, 3, false))
}

func TestCacheOverwrite(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	key := Key("q", 3, 3, false)

	first := sampleResponse()
	require.NoError(t, c.Put(ctx, key, first))

	second := sampleResponse()
	second.Answer = "Updated answer."
	require.NoError(t, c.Put(ctx, key, second))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Updated answer.", got.Answer)
}

func TestCacheDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	key := Key("q", 3, 3, false)

	require.NoError(t, c.Put(ctx, key, sampleResponse()))
	require.NoError(t, c.Delete(ctx, key))

	_, err := c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is fine.
	assert.NoError(t, c.Delete(ctx, key))
}

func TestCacheNilResponse(t *testing.T) {
	c := newTestCache(t)
	err := c.Put(context.Background(), Key("q", 3, 3, false), nil)
	assert.Error(t, err)
}

func TestCacheClosed(t *testing.T) {
	c, err := OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, c.Close())

	ctx := context.Background()
	key := Key("q", 3, 3, false)

	_, err = c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, c.Put(ctx, key, sampleResponse()), ErrClosed)
	assert.ErrorIs(t, c.Delete(ctx, key), ErrClosed)
	assert.NoError(t, c.Close())
}
