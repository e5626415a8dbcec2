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
	"sort"

	"github.com/asgardeo/dashcore/internal/query"
	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
	"github.com/asgardeo/dashcore/internal/system/log"
	"github.com/asgardeo/dashcore/internal/validation"
)

// CollectionServiceInterface defines the interface for the collection service.
type CollectionServiceInterface interface {
	GetCollectionList() []CollectionSummary
	GetCollection(name string) (*CollectionDetails, *serviceerror.ServiceError)
	QueryCollection(name string, criteria query.Criteria) (*QueryResult, *serviceerror.ServiceError)
}

// collectionService is the default implementation of CollectionServiceInterface.
type collectionService struct {
	definitions map[string]*Definition
	schemas     map[string]query.Schema[Item]
	source      itemSourceInterface
}

// newCollectionService creates a collection service over definitions already checked by the loader.
// Definitions whose schema does not build are dropped.
func newCollectionService(definitions map[string]*Definition, source itemSourceInterface) CollectionServiceInterface {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CollectionService"))

	svc := &collectionService{
		definitions: make(map[string]*Definition, len(definitions)),
		schemas:     make(map[string]query.Schema[Item], len(definitions)),
		source:      source,
	}
	for name, def := range definitions {
		schema, err := def.Schema()
		if err != nil {
			logger.Warn("Skipping invalid collection definition", log.String(log.LoggerKeyCollection, name),
				log.Error(err))
			continue
		}
		svc.definitions[name] = def
		svc.schemas[name] = schema
	}
	return svc
}

// GetCollectionList returns the summaries of all collections ordered by name.
func (cs *collectionService) GetCollectionList() []CollectionSummary {
	summaries := make([]CollectionSummary, 0, len(cs.definitions))
	for _, def := range cs.definitions {
		summaries = append(summaries, summaryOf(def))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}

// GetCollection returns the details of a collection, including the selectable values of each filter.
func (cs *collectionService) GetCollection(name string) (*CollectionDetails, *serviceerror.ServiceError) {
	def, items, svcErr := cs.loadItems(name)
	if svcErr != nil {
		return nil, svcErr
	}

	schema := cs.schemas[name]
	filterOptions := make(map[string][]string, len(def.Filters))
	for _, key := range def.Filters {
		filterOptions[key] = distinctValues(items, schema.Attributes[key].Value)
	}

	searchable := def.Searchable
	if searchable == nil {
		searchable = []string{}
	}
	return &CollectionDetails{
		CollectionSummary: summaryOf(def),
		Attributes:        def.Attributes,
		Searchable:        searchable,
		DefaultSort:       def.DefaultSort,
		FilterOptions:     filterOptions,
		Total:             len(items),
	}, nil
}

// QueryCollection computes the view of a collection. A criteria without a sort key uses the
// collection's default sort.
func (cs *collectionService) QueryCollection(name string, criteria query.Criteria) (
	*QueryResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CollectionService"))

	def, items, svcErr := cs.loadItems(name)
	if svcErr != nil {
		return nil, svcErr
	}

	if criteria.SortKey == "" && def.DefaultSort.Key != "" {
		criteria.SortKey = def.DefaultSort.Key
		criteria.SortDirection = query.ParseDirection(def.DefaultSort.Direction)
	}

	engine, err := query.NewEngine(cs.schemas[name], items)
	if err != nil {
		logger.Error("Failed to create query engine", log.String(log.LoggerKeyCollection, name), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	engine.SetCriteria(criteria)

	return &QueryResult{
		Name:     def.Name,
		Total:    engine.Total(),
		Count:    engine.Count(),
		Criteria: engine.Criteria(),
		Items:    engine.View(),
	}, nil
}

func (cs *collectionService) loadItems(name string) (*Definition, []Item, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CollectionService"))

	if name == "" {
		return nil, nil, &ErrorInvalidCollectionName
	}
	def, ok := cs.definitions[name]
	if !ok {
		return nil, nil, &ErrorCollectionNotFound
	}

	items, err := cs.source.GetItems(def)
	if err != nil {
		logger.Error("Failed to load collection items", log.String(log.LoggerKeyCollection, name), log.Error(err))
		return nil, nil, &ErrorInternalServerError
	}
	return def, items, nil
}

func summaryOf(def *Definition) CollectionSummary {
	return CollectionSummary{
		Name:        def.Name,
		DisplayName: def.DisplayName,
		Description: def.Description,
	}
}

// distinctValues lists the non-empty string forms of an attribute in first-seen order,
// preceded by the All sentinel.
func distinctValues(items []Item, value query.Accessor[Item]) []string {
	seen := map[string]struct{}{}
	values := []string{query.All}
	for _, item := range items {
		v, ok := value(item)
		if !ok {
			continue
		}
		s := validation.ToString(v)
		if s == "" || s == query.All {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		values = append(values, s)
	}
	return values
}
