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

package query

import (
	"github.com/asgardeo/dashcore/internal/system/log"
)

// Engine holds a source collection and the criteria applied to it, and keeps the derived
// view current. Every mutator recomputes the view in full.
// An Engine is owned by a single caller and is not safe for concurrent use.
type Engine[T any] struct {
	schema   Schema[T]
	source   []T
	criteria Criteria
	view     []T
	logger   *log.Logger
}

// NewEngine validates the schema and returns an engine over a copy of source with empty criteria.
func NewEngine[T any](schema Schema[T], source []T) (*Engine[T], error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	e := &Engine[T]{
		schema: schema,
		criteria: Criteria{
			Filters:       map[string]string{},
			SortDirection: Ascending,
		},
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "QueryEngine")),
	}
	e.SetSource(source)
	return e, nil
}

// SetSource replaces the source collection.
func (e *Engine[T]) SetSource(source []T) {
	e.source = append([]T(nil), source...)
	e.recompute()
}

// SetQuery sets the free-text query. An empty query matches every record.
func (e *Engine[T]) SetQuery(text string) {
	e.criteria.Query = text
	e.recompute()
}

// SetFilter sets the selected value of a filter. All or an empty value removes the constraint.
func (e *Engine[T]) SetFilter(key, value string) {
	if IsActiveFilter(value) {
		e.criteria.Filters[key] = value
	} else {
		delete(e.criteria.Filters, key)
	}
	e.recompute()
}

// ClearFilters removes every filter constraint.
func (e *Engine[T]) ClearFilters() {
	e.criteria.Filters = map[string]string{}
	e.recompute()
}

// SetSort sets the sort key and direction. An unknown key keeps the filtered order.
func (e *Engine[T]) SetSort(key string, direction Direction) {
	if direction != Descending {
		direction = Ascending
	}
	e.criteria.SortKey = key
	e.criteria.SortDirection = direction
	e.recompute()
}

// SetCriteria replaces all criteria at once.
func (e *Engine[T]) SetCriteria(criteria Criteria) {
	criteria = criteria.Clone()
	for key, value := range criteria.Filters {
		if !IsActiveFilter(value) {
			delete(criteria.Filters, key)
		}
	}
	if criteria.SortDirection != Descending {
		criteria.SortDirection = Ascending
	}
	e.criteria = criteria
	e.recompute()
}

// Criteria returns a copy of the current criteria.
func (e *Engine[T]) Criteria() Criteria {
	return e.criteria.Clone()
}

// View returns a copy of the derived view.
func (e *Engine[T]) View() []T {
	return append([]T(nil), e.view...)
}

// Count returns the number of records in the view.
func (e *Engine[T]) Count() int {
	return len(e.view)
}

// Total returns the number of records in the source.
func (e *Engine[T]) Total() int {
	return len(e.source)
}

func (e *Engine[T]) recompute() {
	e.view = Compute(e.source, e.schema, e.criteria)

	if e.logger.IsDebugEnabled() {
		e.logger.Debug("Recomputed view", log.Int("total", len(e.source)), log.Int("count", len(e.view)),
			log.String("sortKey", e.criteria.SortKey))
	}
}
