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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/dashcore/internal/system/config"
)

type CacheTestSuite struct {
	suite.Suite
	clock time.Time
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (suite *CacheTestSuite) SetupTest() {
	suite.clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *CacheTestSuite) newCache(cfg config.CacheConfig) CacheInterface[string] {
	return NewCache[string]("TestCache", cfg, WithClock(func() time.Time { return suite.clock }))
}

func (suite *CacheTestSuite) TestNewCacheResolvesSettings() {
	testCases := []struct {
		name        string
		cfg         config.CacheConfig
		enabled     bool
		expectedMax int
	}{
		{name: "Defaults", cfg: config.CacheConfig{}, enabled: true, expectedMax: defaultCacheSize},
		{name: "GlobalSize", cfg: config.CacheConfig{Size: 20}, enabled: true, expectedMax: 20},
		{
			name: "PropertyOverridesGlobal",
			cfg: config.CacheConfig{Size: 20, Properties: []config.CacheProperty{
				{Name: "OtherCache", Size: 5},
				{Name: "TestCache", Size: 3},
			}},
			enabled:     true,
			expectedMax: 3,
		},
		{name: "GloballyDisabled", cfg: config.CacheConfig{Disabled: true}, enabled: false},
		{
			name: "PropertyDisabled",
			cfg: config.CacheConfig{Properties: []config.CacheProperty{
				{Name: "TestCache", Disabled: true},
			}},
			enabled: false,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			c := suite.newCache(tc.cfg)

			assert.Equal(t, "TestCache", c.GetName())
			assert.Equal(t, tc.enabled, c.IsEnabled())
			stats := c.GetStats()
			assert.Equal(t, tc.enabled, stats.Enabled)
			assert.Equal(t, tc.expectedMax, stats.MaxSize)
		})
	}
}

func (suite *CacheTestSuite) TestSetGetDelete() {
	c := suite.newCache(config.CacheConfig{})
	key := CacheKey{Key: "a"}

	c.Set(key, "first")
	value, ok := c.Get(key)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "first", value)

	c.Set(key, "second")
	value, _ = c.Get(key)
	assert.Equal(suite.T(), "second", value)

	assert.True(suite.T(), c.Delete(key))
	assert.False(suite.T(), c.Delete(key))
	_, ok = c.Get(key)
	assert.False(suite.T(), ok)

	stats := c.GetStats()
	assert.Equal(suite.T(), int64(2), stats.HitCount)
	assert.Equal(suite.T(), int64(1), stats.MissCount)
}

func (suite *CacheTestSuite) TestEntriesExpireAfterTTL() {
	c := suite.newCache(config.CacheConfig{TTL: 60})
	key := CacheKey{Key: "a"}
	c.Set(key, "value")

	suite.clock = suite.clock.Add(59 * time.Second)
	_, ok := c.Get(key)
	assert.True(suite.T(), ok)

	suite.clock = suite.clock.Add(2 * time.Second)
	_, ok = c.Get(key)
	assert.False(suite.T(), ok)
	assert.Equal(suite.T(), 0, c.GetStats().Size)
}

func (suite *CacheTestSuite) TestSetRestartsExpiry() {
	c := suite.newCache(config.CacheConfig{TTL: 60})
	key := CacheKey{Key: "a"}
	c.Set(key, "value")

	suite.clock = suite.clock.Add(50 * time.Second)
	c.Set(key, "value")
	suite.clock = suite.clock.Add(50 * time.Second)

	_, ok := c.Get(key)
	assert.True(suite.T(), ok)
}

func (suite *CacheTestSuite) TestDeleteExpiredEntryReportsFalse() {
	c := suite.newCache(config.CacheConfig{TTL: 60})
	key := CacheKey{Key: "a"}
	c.Set(key, "value")

	suite.clock = suite.clock.Add(2 * time.Minute)

	assert.False(suite.T(), c.Delete(key))
	assert.Equal(suite.T(), 0, c.GetStats().Size)
}

func (suite *CacheTestSuite) TestLeastRecentlyUsedIsEvicted() {
	c := suite.newCache(config.CacheConfig{Size: 2})
	c.Set(CacheKey{Key: "a"}, "A")
	c.Set(CacheKey{Key: "b"}, "B")
	_, _ = c.Get(CacheKey{Key: "a"})

	c.Set(CacheKey{Key: "c"}, "C")

	_, aOK := c.Get(CacheKey{Key: "a"})
	_, bOK := c.Get(CacheKey{Key: "b"})
	_, cOK := c.Get(CacheKey{Key: "c"})
	assert.True(suite.T(), aOK)
	assert.False(suite.T(), bOK)
	assert.True(suite.T(), cOK)
	assert.Equal(suite.T(), int64(1), c.GetStats().EvictCount)
}

func (suite *CacheTestSuite) TestCleanupExpired() {
	c := suite.newCache(config.CacheConfig{TTL: 60})
	c.Set(CacheKey{Key: "old"}, "old")
	suite.clock = suite.clock.Add(45 * time.Second)
	c.Set(CacheKey{Key: "new"}, "new")
	suite.clock = suite.clock.Add(30 * time.Second)

	c.CleanupExpired()

	stats := c.GetStats()
	assert.Equal(suite.T(), 1, stats.Size)
	assert.Equal(suite.T(), int64(0), stats.MissCount)
	_, ok := c.Get(CacheKey{Key: "new"})
	assert.True(suite.T(), ok)
}

func (suite *CacheTestSuite) TestClear() {
	c := suite.newCache(config.CacheConfig{})
	c.Set(CacheKey{Key: "a"}, "A")
	_, _ = c.Get(CacheKey{Key: "a"})

	c.Clear()

	stats := c.GetStats()
	assert.Equal(suite.T(), 0, stats.Size)
	assert.Equal(suite.T(), int64(0), stats.HitCount)
}

func (suite *CacheTestSuite) TestDisabledCacheStoresNothing() {
	c := suite.newCache(config.CacheConfig{Disabled: true})
	key := CacheKey{Key: "a"}

	c.Set(key, "value")
	_, ok := c.Get(key)

	assert.False(suite.T(), ok)
	assert.False(suite.T(), c.Delete(key))
	c.Clear()
	c.CleanupExpired()
	assert.Equal(suite.T(), CacheStat{}, c.GetStats())
}
