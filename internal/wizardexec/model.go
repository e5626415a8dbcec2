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

package wizardexec

import (
	"github.com/asgardeo/dashcore/internal/validation"
	"github.com/asgardeo/dashcore/internal/wizard"
)

// WizardSummary is the list view of a wizard definition.
type WizardSummary struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
	StepCount   int    `json:"stepCount"`
}

// SessionState is the externally visible state of a wizard session.
type SessionState struct {
	SessionID    string                   `json:"sessionId"`
	Wizard       string                   `json:"wizard"`
	CurrentStep  int                      `json:"currentStep"`
	StepCount    int                      `json:"stepCount"`
	StepName     string                   `json:"stepName"`
	StepTitle    string                   `json:"stepTitle,omitempty"`
	Fields       []wizard.FieldDefinition `json:"fields"`
	Values       map[string]any           `json:"values"`
	Errors       validation.ErrorMap      `json:"errors"`
	IsSubmitting bool                     `json:"isSubmitting"`
	Completed    bool                     `json:"completed"`
	SubmissionID string                   `json:"submissionId,omitempty"`
}

// setFieldsRequest is the request body of the set fields endpoint.
type setFieldsRequest struct {
	Values map[string]any `json:"values"`
}
