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

// Package validation provides the field rules and predicate helpers shared by the wizard
// and query engines.
package validation

// ErrorMap maps a field key to a human readable validation message.
// An empty map means the validated values are valid.
type ErrorMap map[string]string

// HasErrors reports whether at least one field carries a non-empty message.
func (e ErrorMap) HasErrors() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// Merge copies the non-empty messages of other into e, keeping existing messages.
func (e ErrorMap) Merge(other ErrorMap) ErrorMap {
	if e == nil {
		e = ErrorMap{}
	}
	for key, msg := range other {
		if msg == "" {
			continue
		}
		if _, exists := e[key]; !exists {
			e[key] = msg
		}
	}
	return e
}

// Clone returns a copy of the map holding only non-empty messages.
func (e ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(e))
	for key, msg := range e {
		if msg != "" {
			out[key] = msg
		}
	}
	return out
}

// Validator checks a set of field values and returns the failing fields.
type Validator func(values map[string]any) ErrorMap

// Run executes the validator, treating a nil validator as always valid.
func (v Validator) Run(values map[string]any) ErrorMap {
	if v == nil {
		return ErrorMap{}
	}
	errs := v(values)
	if errs == nil {
		return ErrorMap{}
	}
	return errs.Clone()
}

// Combine runs every validator and merges their results. Earlier validators win on conflicts.
func Combine(validators ...Validator) Validator {
	return func(values map[string]any) ErrorMap {
		errs := ErrorMap{}
		for _, v := range validators {
			errs = errs.Merge(v.Run(values))
		}
		return errs
	}
}
