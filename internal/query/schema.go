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
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/asgardeo/dashcore/internal/validation"
)

// Kind decides how an attribute compares when it is the sort key.
type Kind string

const (
	// KindString compares lexicographically.
	KindString Kind = "string"
	// KindNumber compares numerically.
	KindNumber Kind = "number"
	// KindNumericText compares numerically after stripping the attribute's decoration.
	KindNumericText Kind = "numeric_text"
	// KindDate compares chronologically.
	KindDate Kind = "date"
)

// ParseKind maps a configured kind name to a Kind. An empty name is KindString.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindString:
		return KindString, nil
	case KindNumber:
		return KindNumber, nil
	case KindNumericText:
		return KindNumericText, nil
	case KindDate:
		return KindDate, nil
	}
	return "", fmt.Errorf("unsupported attribute kind '%s'", s)
}

// Accessor reads an attribute from a record. It returns false when the record lacks it.
type Accessor[T any] func(record T) (any, bool)

// Attribute declares one queryable attribute of a record type.
type Attribute[T any] struct {
	Kind  Kind
	Value Accessor[T]
	// Decoration lists the runes stripped from KindNumericText values, e.g. "$,%".
	Decoration string
}

// Schema declares the attributes of a record type and which of them can be searched and filtered.
type Schema[T any] struct {
	Attributes map[string]Attribute[T]
	Searchable []string
	Filters    []string
}

// Validate checks that every searchable and filter key names a declared attribute.
func (s Schema[T]) Validate() error {
	for name, attr := range s.Attributes {
		if attr.Value == nil {
			return fmt.Errorf("attribute '%s' has no accessor", name)
		}
		if _, err := ParseKind(string(attr.Kind)); err != nil {
			return fmt.Errorf("attribute '%s': %w", name, err)
		}
	}
	for _, name := range s.Searchable {
		if _, ok := s.Attributes[name]; !ok {
			return fmt.Errorf("searchable attribute '%s' is not declared", name)
		}
	}
	for _, name := range s.Filters {
		if _, ok := s.Attributes[name]; !ok {
			return fmt.Errorf("filter attribute '%s' is not declared", name)
		}
	}
	return nil
}

// HasFilter reports whether key is a declared filter.
func (s Schema[T]) HasFilter(key string) bool {
	for _, name := range s.Filters {
		if name == key {
			return true
		}
	}
	return false
}

// MapValue returns an accessor reading key from map records.
func MapValue(key string) Accessor[map[string]any] {
	return func(record map[string]any) (any, bool) {
		v, ok := record[key]
		return v, ok
	}
}

// text returns the string form of the attribute used by filters and search.
// A missing attribute reads as the empty string.
func (a Attribute[T]) text(record T) string {
	if a.Value == nil {
		return ""
	}
	v, ok := a.Value(record)
	if !ok {
		return ""
	}
	return validation.ToString(v)
}

// sortValue is a comparable projection of one attribute value.
type sortValue struct {
	str  string
	num  float64
	date time.Time
}

// project reads the sort value of a record. Missing or unparsable values fall back to the
// empty string, 0 or the zero time.
func (a Attribute[T]) project(record T) sortValue {
	if a.Value == nil {
		return sortValue{}
	}
	v, ok := a.Value(record)
	if !ok {
		return sortValue{}
	}
	switch a.Kind {
	case KindNumber:
		return sortValue{num: sanitize(validation.ParseNumericLike(v, ""))}
	case KindNumericText:
		return sortValue{num: sanitize(validation.ParseNumericLike(v, a.Decoration))}
	case KindDate:
		return sortValue{date: validation.ParseDate(v)}
	default:
		return sortValue{str: validation.ToString(v)}
	}
}

func (a Attribute[T]) compare(x, y sortValue) int {
	switch a.Kind {
	case KindNumber, KindNumericText:
		switch {
		case x.num < y.num:
			return -1
		case x.num > y.num:
			return 1
		}
		return 0
	case KindDate:
		return x.date.Compare(y.date)
	default:
		return strings.Compare(x.str, y.str)
	}
}

// sanitize keeps NaN out of comparisons so the order stays total.
func sanitize(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}
