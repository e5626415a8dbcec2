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

// Package query computes filtered, searched and sorted views over in-memory record collections.
package query

import (
	"slices"

	"github.com/asgardeo/dashcore/internal/validation"
)

// Compute derives the view of source under criteria. It filters on the declared filter
// attributes, keeps records whose searchable attributes contain the query case-insensitively,
// and stable-sorts the rest by the sort key. The source slice is never modified.
//
// Compute does not fail and does not require a validated schema: filter and search keys
// without a declared attribute are ignored, an unknown sort key keeps the filtered order,
// and missing or unparsable sort values compare as zero values.
func Compute[T any](source []T, schema Schema[T], criteria Criteria) []T {
	filters := activeDeclaredFilters(schema, criteria)

	view := make([]T, 0, len(source))
	for _, record := range source {
		if matchesFilters(schema, filters, record) && matchesQuery(schema, criteria.Query, record) {
			view = append(view, record)
		}
	}

	attr, ok := schema.Attributes[criteria.SortKey]
	if !ok || criteria.SortKey == "" || len(view) < 2 {
		return view
	}
	return sortView(view, attr, criteria.SortDirection)
}

func activeDeclaredFilters[T any](schema Schema[T], criteria Criteria) map[string]string {
	filters := criteria.ActiveFilters()
	for key := range filters {
		if _, declared := schema.Attributes[key]; !declared || !schema.HasFilter(key) {
			delete(filters, key)
		}
	}
	return filters
}

func matchesFilters[T any](schema Schema[T], filters map[string]string, record T) bool {
	for key, want := range filters {
		if schema.Attributes[key].text(record) != want {
			return false
		}
	}
	return true
}

func matchesQuery[T any](schema Schema[T], query string, record T) bool {
	if query == "" {
		return true
	}
	for _, name := range schema.Searchable {
		attr, declared := schema.Attributes[name]
		if !declared {
			continue
		}
		if validation.ContainsFold(attr.text(record), query) {
			return true
		}
	}
	return false
}

// sortView orders records by attr. Each value is projected once before sorting.
// Descending negates the comparison so equal values keep their input order.
func sortView[T any](view []T, attr Attribute[T], direction Direction) []T {
	type keyed struct {
		record T
		key    sortValue
	}
	entries := make([]keyed, len(view))
	for i, record := range view {
		entries[i] = keyed{record: record, key: attr.project(record)}
	}

	sign := 1
	if direction == Descending {
		sign = -1
	}
	slices.SortStableFunc(entries, func(a, b keyed) int {
		return sign * attr.compare(a.key, b.key)
	})

	for i, entry := range entries {
		view[i] = entry.record
	}
	return view
}
