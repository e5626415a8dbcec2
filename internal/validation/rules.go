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
	"strconv"
	"unicode/utf8"
)

// FieldRule checks a single field value. A failing rule returns its message and false.
type FieldRule interface {
	Check(value any) (string, bool)
}

// RuleFunc adapts a function to the FieldRule interface.
type RuleFunc func(value any) (string, bool)

// Check calls f(value).
func (f RuleFunc) Check(value any) (string, bool) {
	return f(value)
}

// FieldRules builds a validator that applies the rules of every field and reports the
// first failing rule per field. Rules other than Required are skipped for empty values.
func FieldRules(rules map[string][]FieldRule) Validator {
	return func(values map[string]any) ErrorMap {
		errs := ErrorMap{}
		for field, fieldRules := range rules {
			value := values[field]
			for _, rule := range fieldRules {
				if _, isRequired := rule.(requiredRule); !isRequired && IsEmpty(value) {
					continue
				}
				if msg, ok := rule.Check(value); !ok {
					errs[field] = msg
					break
				}
			}
		}
		return errs
	}
}

type requiredRule struct {
	message string
}

func (r requiredRule) Check(value any) (string, bool) {
	if IsEmpty(value) {
		return r.message, false
	}
	return "", true
}

// Required fails when the value is empty.
func Required(message string) FieldRule {
	return requiredRule{message: message}
}

// MinLength fails when a string value has fewer than n characters.
func MinLength(n int, message string) FieldRule {
	return RuleFunc(func(value any) (string, bool) {
		if utf8.RuneCountInString(ToString(value)) < n {
			return message, false
		}
		return "", true
	})
}

// MaxLength fails when a string value has more than n characters.
func MaxLength(n int, message string) FieldRule {
	return RuleFunc(func(value any) (string, bool) {
		if utf8.RuneCountInString(ToString(value)) > n {
			return message, false
		}
		return "", true
	})
}

// Pattern fails when the string form of the value does not match the expression.
func Pattern(re *regexp.Regexp, message string) FieldRule {
	return RuleFunc(func(value any) (string, bool) {
		if !re.MatchString(ToString(value)) {
			return message, false
		}
		return "", true
	})
}

// OneOf fails when the string form of the value is not one of the allowed options.
func OneOf(options []string, message string) FieldRule {
	allowed := make(map[string]struct{}, len(options))
	for _, opt := range options {
		allowed[opt] = struct{}{}
	}
	return RuleFunc(func(value any) (string, bool) {
		if _, ok := allowed[ToString(value)]; !ok {
			return message, false
		}
		return "", true
	})
}

// Numeric fails when the value is not a number or a numeric string.
func Numeric(message string) FieldRule {
	return RuleFunc(func(value any) (string, bool) {
		if _, ok := ToFloat(value); !ok {
			return message, false
		}
		return "", true
	})
}

// Min fails when the value is not a number or is lower than limit.
func Min(limit float64, message string) FieldRule {
	return RuleFunc(func(value any) (string, bool) {
		f, ok := ToFloat(value)
		if !ok || f < limit {
			return message, false
		}
		return "", true
	})
}

// Max fails when the value is not a number or is greater than limit.
func Max(limit float64, message string) FieldRule {
	return RuleFunc(func(value any) (string, bool) {
		f, ok := ToFloat(value)
		if !ok || f > limit {
			return message, false
		}
		return "", true
	})
}

// Positive fails when the value is not a number strictly greater than zero.
func Positive(message string) FieldRule {
	return RuleFunc(func(value any) (string, bool) {
		f, ok := ToFloat(value)
		if !ok || f <= 0 {
			return message, false
		}
		return "", true
	})
}

// formatLimit renders a numeric bound for default messages.
func formatLimit(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// defaultMessage builds the message used when a rule spec does not configure one.
func defaultMessage(ruleType, label string, value any) string {
	switch ruleType {
	case RuleTypeRequired:
		return label + " is required"
	case RuleTypeMinLength:
		return fmt.Sprintf("%s must be at least %v characters", label, value)
	case RuleTypeMaxLength:
		return fmt.Sprintf("%s must be at most %v characters", label, value)
	case RuleTypePattern:
		return label + " has an invalid format"
	case RuleTypeEnum:
		return label + " must be one of the allowed values"
	case RuleTypeNumeric:
		return label + " must be a number"
	case RuleTypeMin:
		return fmt.Sprintf("%s must be at least %v", label, value)
	case RuleTypeMax:
		return fmt.Sprintf("%s must be at most %v", label, value)
	case RuleTypePositive:
		return label + " must be greater than 0"
	}
	return label + " is invalid"
}
