package cache

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/lexquery/core"
)

const responseKeyPrefix = "response:"

// Key derives the cache key for a question under a given configuration.
// The settings are part of the key: the same question asked with a
// different budget or web-search mode is a different cache entry.
func Key(question string, maxIterations, topK int, webSearch bool) core.ID {
	return core.IDFromContent(fmt.Sprintf("%s|%d|%d|%t", question, maxIterations, topK, webSearch))
}

// responseKey builds the storage key for a response entry.
func responseKey(id core.ID) []byte {
	key := make([]byte, len(responseKeyPrefix)+8)
	copy(key, responseKeyPrefix)
	binary.LittleEndian.PutUint64(key[len(responseKeyPrefix):], uint64(id))
	return key
}
