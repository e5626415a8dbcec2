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

package collection

import (
	"encoding/json"
	"fmt"

	"github.com/asgardeo/dashcore/internal/system/cache"
	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/database/provider"
)

// itemCacheName names the cache that holds collection items read from the database.
const itemCacheName = "CollectionItemCache"

// itemSourceInterface supplies the items of a collection.
type itemSourceInterface interface {
	GetItems(def *Definition) ([]Item, error)
}

// fileItemSource serves the items declared inline in the definition file.
type fileItemSource struct{}

// GetItems returns the inline items of the definition.
func (s *fileItemSource) GetItems(def *Definition) ([]Item, error) {
	return def.Items, nil
}

// dbItemSource reads collection items from the runtime database.
// A collection without stored rows falls back to its inline items.
type dbItemSource struct {
	dbProvider provider.DBProviderInterface
}

// newItemSource creates the item source for the configured source type.
func newItemSource(source string, dbProvider provider.DBProviderInterface) (itemSourceInterface, error) {
	switch source {
	case "", SourceFile:
		return &fileItemSource{}, nil
	case SourceDatabase:
		return &dbItemSource{dbProvider: dbProvider}, nil
	default:
		return nil, fmt.Errorf("unsupported collection source: %s", source)
	}
}

// GetItems retrieves the items of the collection from the database.
func (s *dbItemSource) GetItems(def *Definition) ([]Item, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.RuntimeDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetCollectionItems, def.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return def.Items, nil
	}

	items := make([]Item, 0, len(results))
	for _, row := range results {
		item, err := buildItemFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build item from result row: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// cachedItemSource serves collection items from a cache placed in front of another source.
type cachedItemSource struct {
	itemCache cache.CacheInterface[[]Item]
	source    itemSourceInterface
}

// newCachedItemSource wraps source with the collection item cache.
func newCachedItemSource(source itemSourceInterface, cacheConfig config.CacheConfig,
	opts ...cache.Option) itemSourceInterface {
	return &cachedItemSource{
		itemCache: cache.NewCache[[]Item](itemCacheName, cacheConfig, opts...),
		source:    source,
	}
}

// GetItems returns the cached items of the collection, loading them from the source on a miss.
// Failed loads are not cached.
func (s *cachedItemSource) GetItems(def *Definition) ([]Item, error) {
	cacheKey := cache.CacheKey{Key: def.Name}
	if items, ok := s.itemCache.Get(cacheKey); ok {
		return items, nil
	}

	items, err := s.source.GetItems(def)
	if err != nil {
		return nil, err
	}
	s.itemCache.Set(cacheKey, items)
	return items, nil
}

// buildItemFromResultRow decodes the ATTRIBUTES JSON object of a row.
func buildItemFromResultRow(row map[string]interface{}) (Item, error) {
	var attributesJSON string
	switch v := row["attributes"].(type) {
	case string:
		attributesJSON = v
	case []byte:
		attributesJSON = string(v)
	default:
		return nil, fmt.Errorf("failed to parse attributes as string")
	}

	item := Item{}
	if err := json.Unmarshal([]byte(attributesJSON), &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attributes: %w", err)
	}

	if _, exists := item[itemIDAttribute]; !exists {
		switch id := row["item_id"].(type) {
		case string:
			item[itemIDAttribute] = id
		case []byte:
			item[itemIDAttribute] = string(id)
		}
	}
	return item, nil
}
