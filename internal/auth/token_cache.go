// internal/auth/token_cache.go
package auth

import (
	"sync"
	"time"
)

// TokenCache remembers verified tokens until they expire, so each
// request does not round-trip to the identity provider. Expiry is the
// token's own expiry, compared as-is: an earlier client of this API
// multiplied one token type's stored expiry by 2 before comparing,
// silently doubling its lifetime. That was a bug, not a contract.
type TokenCache struct {
	mu      sync.Mutex
	entries map[string]*Claims
	Now     func() time.Time // defaults to time.Now, overridable in tests
}

func NewTokenCache() *TokenCache {
	return &TokenCache{entries: make(map[string]*Claims)}
}

func (c *TokenCache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Get returns the cached claims for a token, or nil when unknown or
// expired. Expired entries are dropped on the way out.
func (c *TokenCache) Get(token string) *Claims {
	c.mu.Lock()
	defer c.mu.Unlock()

	claims, ok := c.entries[token]
	if !ok {
		return nil
	}
	if !claims.Expiry.After(c.now()) {
		delete(c.entries, token)
		return nil
	}
	return claims
}

// Put caches claims under their token. Already-expired claims are not
// stored.
func (c *TokenCache) Put(token string, claims *Claims) {
	if claims == nil || !claims.Expiry.After(c.now()) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = claims
}

// Clear drops every cached token.
func (c *TokenCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Claims)
}
