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
	"net/http"
	"strings"

	"github.com/asgardeo/dashcore/internal/system/error/apierror"
	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
	"github.com/asgardeo/dashcore/internal/system/log"
	sysutils "github.com/asgardeo/dashcore/internal/system/utils"
)

// submissionHandler is the handler for submission read operations.
type submissionHandler struct {
	submissionService SubmissionServiceInterface
}

// newSubmissionHandler creates a new instance of submissionHandler.
func newSubmissionHandler(submissionService SubmissionServiceInterface) *submissionHandler {
	return &submissionHandler{
		submissionService: submissionService,
	}
}

// HandleSubmissionListRequest handles the list submissions request.
func (sh *submissionHandler) HandleSubmissionListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SubmissionHandler"))

	wizardName := strings.TrimSpace(r.URL.Query().Get("wizard"))
	submissions, svcErr := sh.submissionService.GetSubmissionList(wizardName)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, submissionListResponse{
		TotalResults: len(submissions),
		Submissions:  submissions,
	})
}

// HandleSubmissionGetRequest handles the get submission request.
func (sh *submissionHandler) HandleSubmissionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SubmissionHandler"))

	id := strings.TrimSpace(r.PathValue("id"))
	submission, svcErr := sh.submissionService.GetSubmission(id)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, submission)
}

// writeServiceErrorResponse writes a service error as an API error response.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	} else {
		statusCode = http.StatusInternalServerError
		logger.Debug("Responding with server error", log.String("code", svcErr.Code))
	}

	sysutils.WriteJSONResponse(w, statusCode, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	})
}

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case ErrorSubmissionNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
