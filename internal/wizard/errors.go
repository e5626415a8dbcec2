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

package wizard

import "errors"

var (
	// ErrUnknownField is returned when a field key is not owned by any step.
	ErrUnknownField = errors.New("field is not declared by any step")
	// ErrNotOnLastStep is returned when submit is called before reaching the last step.
	ErrNotOnLastStep = errors.New("submit is only allowed on the last step")
	// ErrSubmitInProgress is returned when submit is re-entered while a submission is running.
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	// ErrWizardCompleted is returned when a completed wizard is edited without a reset.
	ErrWizardCompleted = errors.New("wizard is already completed")
)

// SubmissionError reports that the submit callback rejected the assembled payload.
// The wizard stays on its last step so the caller may retry.
type SubmissionError struct {
	Cause error
}

// Error implements the error interface.
func (e *SubmissionError) Error() string {
	if e.Cause == nil {
		return "submission failed"
	}
	return "submission failed: " + e.Cause.Error()
}

// Unwrap returns the callback error.
func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
