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

import "strings"

// All is the filter value meaning "no constraint" for its key. An empty value means the same.
const All = "All"

// Direction is the sort order of a view.
type Direction string

const (
	// Ascending orders from the lowest to the highest sort value.
	Ascending Direction = "asc"
	// Descending orders from the highest to the lowest sort value.
	Descending Direction = "desc"
)

// ParseDirection maps "asc"/"ascending" and "desc"/"descending" in any case to a Direction.
// Anything else is ascending.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// Criteria is the search, filter and sort configuration that drives a view.
type Criteria struct {
	Query         string            `json:"query"`
	Filters       map[string]string `json:"filters"`
	SortKey       string            `json:"sortKey,omitempty"`
	SortDirection Direction         `json:"sortDirection"`
}

// IsActiveFilter reports whether a filter value constrains the view.
func IsActiveFilter(value string) bool {
	return value != "" && value != All
}

// ActiveFilters returns the filters that constrain the view.
func (c Criteria) ActiveFilters() map[string]string {
	active := make(map[string]string, len(c.Filters))
	for key, value := range c.Filters {
		if IsActiveFilter(value) {
			active[key] = value
		}
	}
	return active
}

// Clone returns a copy of the criteria that shares no maps with c.
func (c Criteria) Clone() Criteria {
	out := c
	out.Filters = make(map[string]string, len(c.Filters))
	for key, value := range c.Filters {
		out.Filters[key] = value
	}
	if out.SortDirection == "" {
		out.SortDirection = Ascending
	}
	return out
}
