/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/asgardeo/dashcore/internal/system/log"
)

// inMemoryCacheEntry represents an entry in the in-memory cache with its position in the access order.
type inMemoryCacheEntry[T any] struct {
	*CacheEntry[T]
	listElement *list.Element
}

// inMemoryCache is a size bounded LRU cache whose entries expire ttl after they were last set.
type inMemoryCache[T any] struct {
	name        string
	cache       map[CacheKey]*inMemoryCacheEntry[T]
	accessOrder *list.List
	mu          sync.Mutex
	size        int
	ttl         time.Duration
	now         func() time.Time
	hitCount    int64
	missCount   int64
	evictCount  int64
}

// newInMemoryCache creates a new instance of inMemoryCache.
func newInMemoryCache[T any](name string, size int, ttl time.Duration, now func() time.Time) *inMemoryCache[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String("name", name))

	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL * time.Second
	}
	if now == nil {
		now = time.Now
	}

	logger.Debug("Initializing in-memory cache", log.Int("size", size), log.Any("ttl", ttl))

	return &inMemoryCache[T]{
		name:        name,
		cache:       make(map[CacheKey]*inMemoryCacheEntry[T]),
		accessOrder: list.New(),
		size:        size,
		ttl:         ttl,
		now:         now,
	}
}

// Set adds or updates an entry in the cache and restarts its expiry.
func (c *inMemoryCache[T]) Set(key CacheKey, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiryTime := c.now().Add(c.ttl)

	// Update existing entry if an entry exists
	if existingEntry, exists := c.cache[key]; exists {
		existingEntry.Value = value
		existingEntry.ExpiryTime = expiryTime
		c.accessOrder.MoveToFront(existingEntry.listElement)
		return
	}

	c.cache[key] = &inMemoryCacheEntry[T]{
		CacheEntry: &CacheEntry[T]{
			Value:      value,
			ExpiryTime: expiryTime,
		},
		listElement: c.accessOrder.PushFront(key),
	}

	if len(c.cache) > c.size {
		c.evictOldest()
	}
}

// Get retrieves a value from the cache. An expired entry is removed and reported as a miss.
func (c *inMemoryCache[T]) Get(key CacheKey) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	entry, exists := c.cache[key]
	if !exists {
		c.missCount++
		return zero, false
	}

	if c.now().After(entry.ExpiryTime) {
		c.deleteEntry(key, entry)
		c.missCount++
		return zero, false
	}

	c.accessOrder.MoveToFront(entry.listElement)
	c.hitCount++
	return entry.Value, true
}

// Delete removes an entry from the cache and reports whether a live entry was removed.
func (c *inMemoryCache[T]) Delete(key CacheKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.cache[key]
	if !exists {
		return false
	}
	c.deleteEntry(key, entry)
	return !c.now().After(entry.ExpiryTime)
}

// Clear removes all entries from the cache.
func (c *inMemoryCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[CacheKey]*inMemoryCacheEntry[T])
	c.accessOrder.Init()
	c.hitCount = 0
	c.missCount = 0
	c.evictCount = 0
}

// GetStats returns cache statistics.
func (c *inMemoryCache[T]) GetStats() CacheStat {
	c.mu.Lock()
	defer c.mu.Unlock()

	totalOps := c.hitCount + c.missCount
	var hitRate float64
	if totalOps > 0 {
		hitRate = float64(c.hitCount) / float64(totalOps)
	}

	return CacheStat{
		Enabled:    true,
		Size:       len(c.cache),
		MaxSize:    c.size,
		HitCount:   c.hitCount,
		MissCount:  c.missCount,
		HitRate:    hitRate,
		EvictCount: c.evictCount,
	}
}

// CleanupExpired removes all expired entries from the cache.
func (c *inMemoryCache[T]) CleanupExpired() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String("name", c.name))

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	cleaned := 0
	for key, entry := range c.cache {
		if now.After(entry.ExpiryTime) {
			c.deleteEntry(key, entry)
			cleaned++
		}
	}

	if cleaned > 0 && logger.IsDebugEnabled() {
		logger.Debug("Expired cache entries cleaned", log.Int("count", cleaned))
	}
}

// evictOldest removes the least recently used entry.
func (c *inMemoryCache[T]) evictOldest() {
	oldest := c.accessOrder.Back()
	if oldest == nil {
		return
	}
	key := oldest.Value.(CacheKey)
	if entry, exists := c.cache[key]; exists {
		c.deleteEntry(key, entry)
		c.evictCount++
	}
}

// deleteEntry removes an entry from both the map and the access order list.
func (c *inMemoryCache[T]) deleteEntry(key CacheKey, entry *inMemoryCacheEntry[T]) {
	delete(c.cache, key)
	c.accessOrder.Remove(entry.listElement)
}
