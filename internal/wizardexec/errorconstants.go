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
	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
)

// Client errors for wizard session operations.
var (
	// ErrorWizardNotFound is the error returned when a wizard definition is not found.
	ErrorWizardNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WZS-60001",
		Error:            "Wizard not found",
		ErrorDescription: "The requested wizard could not be found",
	}
	// ErrorSessionNotFound is the error returned when a wizard session is not found or has expired.
	ErrorSessionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WZS-60002",
		Error:            "Wizard session not found",
		ErrorDescription: "The requested wizard session could not be found or has expired",
	}
	// ErrorUnknownField is the error returned when a field is not declared by any step.
	ErrorUnknownField = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WZS-60003",
		Error:            "Unknown field",
		ErrorDescription: "The field is not declared by any step of the wizard",
	}
	// ErrorWizardCompleted is the error returned when a completed wizard is modified.
	ErrorWizardCompleted = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WZS-60004",
		Error:            "Wizard already completed",
		ErrorDescription: "The wizard session has been submitted and can no longer be edited",
	}
	// ErrorNotOnLastStep is the error returned when submit is called before the last step.
	ErrorNotOnLastStep = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WZS-60005",
		Error:            "Not on the last step",
		ErrorDescription: "The wizard can only be submitted from its last step",
	}
	// ErrorSubmitInProgress is the error returned when a submission of the session is already running.
	ErrorSubmitInProgress = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WZS-60006",
		Error:            "Submission in progress",
		ErrorDescription: "The wizard session is being submitted",
	}
	// ErrorSessionBusy is the error returned when another request is operating on the session.
	ErrorSessionBusy = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WZS-60007",
		Error:            "Session busy",
		ErrorDescription: "Another request is operating on the wizard session",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WZS-60008",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
)

// Server errors for wizard session operations.
var (
	// ErrorSubmissionFailed is the error returned when the submit action rejects the payload.
	ErrorSubmissionFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "WZS-65001",
		Error:            "Submission failed",
		ErrorDescription: "The wizard payload could not be submitted",
	}
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "WZS-65002",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
