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

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asgardeo/dashcore/internal/collection"
	"github.com/asgardeo/dashcore/internal/query"
	sysutils "github.com/asgardeo/dashcore/internal/system/utils"
	"github.com/asgardeo/dashcore/internal/validation"
)

type queryOptions struct {
	text    string
	filters []string
	sort    string
}

func queryCmd() *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query <collection.yaml>",
		Short: "Print the view of a collection definition under a search, filters and a sort",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := collection.LoadDefinition(args[0])
			if err != nil {
				return err
			}
			schema, err := def.Schema()
			if err != nil {
				return err
			}
			engine, err := query.NewEngine(schema, def.Items)
			if err != nil {
				return err
			}

			criteria, err := opts.criteria(def)
			if err != nil {
				return err
			}
			engine.SetCriteria(criteria)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderView(def, engine.View()))
			fmt.Fprintln(out, infoMsg("%d of %d items", engine.Count(), engine.Total()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.text, "query", "q", "", "case-insensitive search over the searchable attributes")
	cmd.Flags().StringArrayVarP(&opts.filters, "filter", "f", nil, "filter as key=value, repeatable")
	cmd.Flags().StringVarP(&opts.sort, "sort", "s", "", "sort as key or key:asc|desc")
	return cmd
}

// criteria builds the query criteria. Without a sort flag the definition's default sort applies.
func (o queryOptions) criteria(def *collection.Definition) (query.Criteria, error) {
	filters, err := parseFilters(o.filters)
	if err != nil {
		return query.Criteria{}, err
	}
	criteria := query.Criteria{Query: o.text, Filters: filters}
	if o.sort != "" {
		criteria.SortKey, criteria.SortDirection = parseSort(o.sort)
	} else {
		criteria.SortKey = def.DefaultSort.Key
		criteria.SortDirection = query.ParseDirection(def.DefaultSort.Direction)
	}
	return criteria, nil
}

// parseFilters reads repeated key=value flags.
func parseFilters(pairs []string) (map[string]string, error) {
	filters := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := sysutils.ParseKeyValue(pair)
		if !ok {
			return nil, fmt.Errorf("invalid filter '%s', expected key=value", pair)
		}
		filters[key] = value
	}
	return filters, nil
}

// parseSort splits "key" or "key:direction".
func parseSort(s string) (string, query.Direction) {
	key, dir, _ := strings.Cut(s, ":")
	return strings.TrimSpace(key), query.ParseDirection(dir)
}

func renderView(def *collection.Definition, items []collection.Item) string {
	headers := make([]string, 0, len(def.Attributes))
	for _, attr := range def.Attributes {
		headers = append(headers, attr.Name)
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, 0, len(headers))
		for _, name := range headers {
			row = append(row, validation.ToString(item[name]))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows)
}
