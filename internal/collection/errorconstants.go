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
	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
)

// Client errors for collection operations.
var (
	// ErrorCollectionNotFound is the error returned when a collection is not found.
	ErrorCollectionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CLS-60001",
		Error:            "Collection not found",
		ErrorDescription: "The requested collection could not be found",
	}
	// ErrorInvalidCollectionName is the error returned when the collection name is empty.
	ErrorInvalidCollectionName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CLS-60002",
		Error:            "Invalid collection name",
		ErrorDescription: "The provided collection name is invalid or empty",
	}
)

// Server errors for collection operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CLS-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
