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

// Package cache provides named, size bounded in-memory caches with expiring entries.
package cache

import (
	"time"

	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/log"
)

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T)
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) bool
	Clear()
	IsEnabled() bool
	GetStats() CacheStat
	CleanupExpired()
}

// Option customizes a cache created by NewCache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used to expire entries.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Cache implements the CacheInterface for individual caches.
// A disabled cache stores nothing and misses on every lookup.
type Cache[T any] struct {
	enabled       bool
	cacheName     string
	internalCache *inMemoryCache[T]
}

// NewCache creates the cache with the given name from the cache configuration.
// Size and TTL come from the matching property, then the global values, then the defaults.
func NewCache[T any](cacheName string, cacheConfig config.CacheConfig, opts ...Option) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", cacheName))

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	cacheProperty := getCacheProperty(cacheConfig, cacheName)
	if cacheConfig.Disabled || cacheProperty.Disabled {
		logger.Debug("Cache is disabled")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	size := cacheProperty.Size
	if size <= 0 {
		size = cacheConfig.Size
	}
	ttl := cacheProperty.TTL
	if ttl <= 0 {
		ttl = cacheConfig.TTL
	}

	return &Cache[T]{
		enabled:       true,
		cacheName:     cacheName,
		internalCache: newInMemoryCache[T](cacheName, size, time.Duration(ttl)*time.Second, o.now),
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.cacheName
}

// Set stores a value in the cache.
func (c *Cache[T]) Set(key CacheKey, value T) {
	if c.IsEnabled() {
		c.internalCache.Set(key, value)
	}
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	if c.IsEnabled() {
		return c.internalCache.Get(key)
	}
	var zero T
	return zero, false
}

// Delete removes a value from the cache and reports whether a live entry was removed.
func (c *Cache[T]) Delete(key CacheKey) bool {
	if c.IsEnabled() {
		return c.internalCache.Delete(key)
	}
	return false
}

// Clear removes all entries in the cache.
func (c *Cache[T]) Clear() {
	if c.IsEnabled() {
		c.internalCache.Clear()
	}
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// GetStats returns the cache statistics.
func (c *Cache[T]) GetStats() CacheStat {
	if c.IsEnabled() {
		return c.internalCache.GetStats()
	}
	return CacheStat{Enabled: false}
}

// CleanupExpired cleans up expired entries in the cache.
func (c *Cache[T]) CleanupExpired() {
	if c.IsEnabled() {
		c.internalCache.CleanupExpired()
	}
}

// getCacheProperty retrieves the cache property for the specified cache name.
func getCacheProperty(cacheConfig config.CacheConfig, cacheName string) config.CacheProperty {
	for _, property := range cacheConfig.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return config.CacheProperty{}
}
