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

package submission

import (
	"errors"

	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
)

// ErrSubmissionNotFound is returned when the submission is not found in the store.
var ErrSubmissionNotFound = errors.New("submission not found")

// Client errors for submission operations.
var (
	// ErrorSubmissionNotFound is the error returned when a submission is not found.
	ErrorSubmissionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SBS-60001",
		Error:            "Submission not found",
		ErrorDescription: "The requested submission could not be found",
	}
	// ErrorInvalidSubmissionID is the error returned when the submission ID is empty.
	ErrorInvalidSubmissionID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SBS-60002",
		Error:            "Invalid submission ID",
		ErrorDescription: "The provided submission ID is invalid or empty",
	}
	// ErrorInvalidWizardName is the error returned when the wizard name is empty.
	ErrorInvalidWizardName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SBS-60003",
		Error:            "Invalid wizard name",
		ErrorDescription: "The wizard name must be provided",
	}
	// ErrorInvalidPayload is the error returned when the payload cannot be stored as JSON.
	ErrorInvalidPayload = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SBS-60004",
		Error:            "Invalid payload",
		ErrorDescription: "The submission payload cannot be encoded as JSON",
	}
)

// Server errors for submission operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SBS-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorRequestCancelled is the error returned when the caller gave up before the submission was stored.
	ErrorRequestCancelled = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SBS-65002",
		Error:            "Request cancelled",
		ErrorDescription: "The request was cancelled before the submission was stored",
	}
)
