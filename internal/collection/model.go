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
	"fmt"

	"github.com/asgardeo/dashcore/internal/query"
)

// Item is one record of a collection. Attribute names are the map keys.
type Item = map[string]any

// AttributeDefinition declares one queryable attribute of the collection items.
type AttributeDefinition struct {
	Name       string `yaml:"name" json:"name"`
	Kind       string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Decoration string `yaml:"decoration,omitempty" json:"decoration,omitempty"`
}

// SortDefinition is the sort applied when a request does not name one.
type SortDefinition struct {
	Key       string `yaml:"key" json:"key"`
	Direction string `yaml:"direction,omitempty" json:"direction,omitempty"`
}

// Definition describes a named collection and how it can be queried.
type Definition struct {
	Name        string                `yaml:"name" json:"name"`
	DisplayName string                `yaml:"display_name,omitempty" json:"displayName,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Attributes  []AttributeDefinition `yaml:"attributes" json:"attributes"`
	Searchable  []string              `yaml:"searchable,omitempty" json:"searchable,omitempty"`
	Filters     []string              `yaml:"filters,omitempty" json:"filters,omitempty"`
	DefaultSort SortDefinition        `yaml:"default_sort,omitempty" json:"defaultSort"`
	Items       []Item                `yaml:"items,omitempty" json:"-"`
}

// Schema builds the query schema of the collection over map items.
func (d *Definition) Schema() (query.Schema[Item], error) {
	attributes := make(map[string]query.Attribute[Item], len(d.Attributes))
	for _, attrDef := range d.Attributes {
		if attrDef.Name == "" {
			return query.Schema[Item]{}, fmt.Errorf("collection '%s' has an attribute without a name", d.Name)
		}
		if _, exists := attributes[attrDef.Name]; exists {
			return query.Schema[Item]{}, fmt.Errorf("collection '%s' declares attribute '%s' twice",
				d.Name, attrDef.Name)
		}
		kind, err := query.ParseKind(attrDef.Kind)
		if err != nil {
			return query.Schema[Item]{}, fmt.Errorf("collection '%s': %w", d.Name, err)
		}
		attributes[attrDef.Name] = query.Attribute[Item]{
			Kind:       kind,
			Value:      query.MapValue(attrDef.Name),
			Decoration: attrDef.Decoration,
		}
	}

	schema := query.Schema[Item]{
		Attributes: attributes,
		Searchable: d.Searchable,
		Filters:    d.Filters,
	}
	if err := schema.Validate(); err != nil {
		return query.Schema[Item]{}, fmt.Errorf("collection '%s': %w", d.Name, err)
	}
	if d.DefaultSort.Key != "" {
		if _, ok := attributes[d.DefaultSort.Key]; !ok {
			return query.Schema[Item]{}, fmt.Errorf("collection '%s': default sort key '%s' is not declared",
				d.Name, d.DefaultSort.Key)
		}
	}
	return schema, nil
}

// CollectionSummary is the list view of a collection.
type CollectionSummary struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
}

// CollectionDetails describes a collection and the values its filters can take.
type CollectionDetails struct {
	CollectionSummary
	Attributes    []AttributeDefinition `json:"attributes"`
	Searchable    []string              `json:"searchable"`
	DefaultSort   SortDefinition        `json:"defaultSort"`
	FilterOptions map[string][]string   `json:"filterOptions"`
	Total         int                   `json:"total"`
}

// QueryResult is the derived view of a collection.
type QueryResult struct {
	Name     string         `json:"name"`
	Total    int            `json:"total"`
	Count    int            `json:"count"`
	Criteria query.Criteria `json:"criteria"`
	Items    []Item         `json:"items"`
}
