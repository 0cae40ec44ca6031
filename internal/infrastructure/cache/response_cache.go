// Package cache memoizes dispatch responses for idempotent actions. The
// catalog is immutable for the process lifetime, so cached entries never go
// stale; the TTL and size bound only memory use.
package cache

import (
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/shoplens/backend/internal/domain"
)

// ResponseCache is a thread-safe expirable LRU of marshaled responses keyed
// by canonical request JSON.
type ResponseCache struct {
	lru *expirable.LRU[string, []byte]
}

// New creates a response cache holding up to size entries for at most ttl.
func New(size int, ttl time.Duration) *ResponseCache {
	return &ResponseCache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

// Get returns the cached response body for the key, if present.
func (c *ResponseCache) Get(key string) ([]byte, bool) {
	return c.lru.Get(key)
}

// Set stores a response body under the key.
func (c *ResponseCache) Set(key string, body []byte) {
	c.lru.Add(key, body)
}

// Len returns the current number of cached entries.
func (c *ResponseCache) Len() int {
	return c.lru.Len()
}

// Key derives the canonical cache key for a request and reports whether the
// action is cacheable. Only deterministic catalog-backed actions are cached;
// ping and echo are cheaper than a lookup.
func Key(req domain.ActionRequest) (string, bool) {
	switch req.Action {
	case domain.ActionSearch, domain.ActionDetails, domain.ActionReviews,
		domain.ActionBudgetTop, domain.ActionSustainability:
	default:
		return "", false
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	return string(raw), true
}
