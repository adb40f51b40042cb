package predict

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"sync"
	"time"
)

// CacheEntry represents a cached prediction.
type CacheEntry struct {
	Prediction *Prediction
	ExpiresAt  time.Time
}

// ResponseCache provides in-memory caching of prediction responses for local
// development, so iterating on the dashboard does not hammer the model
// service. It is disabled unless ENABLE_PREDICTION_CACHE=true and is always
// off when API_ENV=production.
type ResponseCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
}

var (
	globalCache *ResponseCache
	cacheOnce   sync.Once
)

// GetCache returns the global cache instance if caching is enabled, nil
// otherwise.
func GetCache() *ResponseCache {
	if os.Getenv("ENABLE_PREDICTION_CACHE") != "true" {
		return nil
	}
	if os.Getenv("API_ENV") == "production" {
		return nil
	}
	cacheOnce.Do(func() {
		globalCache = &ResponseCache{
			store: make(map[string]*CacheEntry),
			ttl:   15 * time.Minute,
		}
		go globalCache.cleanup()
	})
	return globalCache
}

// Get returns a cached prediction if present and not expired.
func (c *ResponseCache) Get(key string) (*Prediction, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Prediction, true
}

// Set stores a prediction in the cache.
func (c *ResponseCache) Set(key string, p *Prediction) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Prediction: p,
		ExpiresAt:  time.Now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache.
func (c *ResponseCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// cleanup periodically removes expired entries.
func (c *ResponseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// CacheKey creates a deterministic key from the feature vector.
func CacheKey(features PropertyFeatures) string {
	raw, _ := json.Marshal(features)
	hash := sha256.Sum256(raw)
	return hex.EncodeToString(hash[:])
}
