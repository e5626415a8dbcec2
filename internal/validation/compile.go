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

package validation

import (
	"fmt"
	"regexp"
)

// Supported rule types for declarative field rules.
const (
	RuleTypeRequired  = "required"
	RuleTypeMinLength = "min_length"
	RuleTypeMaxLength = "max_length"
	RuleTypePattern   = "pattern"
	RuleTypeEnum      = "enum"
	RuleTypeNumeric   = "numeric"
	RuleTypeMin       = "min"
	RuleTypeMax       = "max"
	RuleTypePositive  = "positive"
)

// RuleSpec is the declarative form of a field rule as written in definition files.
type RuleSpec struct {
	Type    string `yaml:"type" json:"type"`
	Value   any    `yaml:"value,omitempty" json:"value,omitempty"`
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
}

// CompileRules converts rule specs into field rules. The label is used in default messages.
func CompileRules(label string, specs []RuleSpec) ([]FieldRule, error) {
	rules := make([]FieldRule, 0, len(specs))
	for i, spec := range specs {
		rule, err := compileRule(label, spec)
		if err != nil {
			return nil, fmt.Errorf("rule %d of '%s': %w", i, label, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func compileRule(label string, spec RuleSpec) (FieldRule, error) {
	message := spec.Message
	if message == "" {
		message = defaultMessage(spec.Type, label, spec.Value)
	}

	switch spec.Type {
	case RuleTypeRequired:
		return Required(message), nil
	case RuleTypeNumeric:
		return Numeric(message), nil
	case RuleTypePositive:
		return Positive(message), nil
	case RuleTypeMinLength, RuleTypeMaxLength:
		n, err := intValue(spec)
		if err != nil {
			return nil, err
		}
		if spec.Type == RuleTypeMinLength {
			return MinLength(n, message), nil
		}
		return MaxLength(n, message), nil
	case RuleTypeMin, RuleTypeMax:
		f, ok := ToFloat(spec.Value)
		if !ok {
			return nil, fmt.Errorf("'%s' rule value must be a number", spec.Type)
		}
		if spec.Message == "" {
			message = defaultMessage(spec.Type, label, formatLimit(f))
		}
		if spec.Type == RuleTypeMin {
			return Min(f, message), nil
		}
		return Max(f, message), nil
	case RuleTypePattern:
		expr, ok := spec.Value.(string)
		if !ok || expr == "" {
			return nil, fmt.Errorf("'pattern' rule value must be a non-empty string")
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile regex pattern: %w", err)
		}
		return Pattern(re, message), nil
	case RuleTypeEnum:
		options, err := stringListValue(spec)
		if err != nil {
			return nil, err
		}
		return OneOf(options, message), nil
	case "":
		return nil, fmt.Errorf("rule type is missing")
	default:
		return nil, fmt.Errorf("unsupported rule type '%s'", spec.Type)
	}
}

func intValue(spec RuleSpec) (int, error) {
	f, ok := ToFloat(spec.Value)
	if !ok || f < 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("'%s' rule value must be a non-negative integer", spec.Type)
	}
	return int(f), nil
}

func stringListValue(spec RuleSpec) ([]string, error) {
	var items []any
	switch v := spec.Value.(type) {
	case []any:
		items = v
	case []string:
		for _, item := range v {
			items = append(items, item)
		}
	default:
		return nil, fmt.Errorf("'enum' rule value must be a list")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("'enum' rule value cannot be empty")
	}

	options := make([]string, 0, len(items))
	for _, item := range items {
		options = append(options, ToString(item))
	}
	return options, nil
}
