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

// Package collection serves the sample record collections of the dashboard and their derived views.
package collection

import (
	"net/http"

	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/database/provider"
	"github.com/asgardeo/dashcore/internal/system/middleware"
)

// Initialize loads the collection definitions, creates the collection service and registers its routes.
// Database reads are served through the collection item cache.
func Initialize(mux *http.ServeMux, cfg config.CollectionConfig, cacheConfig config.CacheConfig,
	dbProvider provider.DBProviderInterface) (CollectionServiceInterface, error) {
	definitions, err := LoadDefinitions(cfg.DefinitionDirectory)
	if err != nil {
		return nil, err
	}
	source, err := newItemSource(cfg.Source, dbProvider)
	if err != nil {
		return nil, err
	}
	if cfg.Source == SourceDatabase {
		source = newCachedItemSource(source, cacheConfig)
	}

	collectionService := newCollectionService(definitions, source)
	collectionHandler := newCollectionHandler(collectionService)
	registerRoutes(mux, collectionHandler)
	return collectionService, nil
}

// registerRoutes registers the routes for collection operations.
func registerRoutes(mux *http.ServeMux, collectionHandler *collectionHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /collections",
		collectionHandler.HandleCollectionListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /collections", middleware.NoContent, opts))
	mux.HandleFunc(middleware.WithCORS("GET /collections/{name}",
		collectionHandler.HandleCollectionGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /collections/{name}", middleware.NoContent, opts))
	mux.HandleFunc(middleware.WithCORS("GET /collections/{name}/items",
		collectionHandler.HandleCollectionQueryRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /collections/{name}/items", middleware.NoContent, opts))
}
